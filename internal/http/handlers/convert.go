package handlers

import "orderdesk/internal/domain"

func (r createOrderRequest) toModel() *domain.Order {
	return &domain.Order{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Address: domain.Address{
			Line1:    r.Address1,
			Line2:    r.Address2,
			Postcode: r.Postcode,
			City:     r.City,
			State:    r.State,
		},
		Price:       r.Price,
		PaymentMode: domain.PaymentMode(r.PaymentMode),
		Product:     r.Product,
		StaffID:     r.StaffID,
	}
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:                o.ID,
		CustomerName:      o.CustomerName,
		CustomerPhone:     o.CustomerPhone,
		Address1:          o.Address.Line1,
		Address2:          o.Address.Line2,
		Postcode:          o.Address.Postcode,
		City:              o.Address.City,
		State:             o.Address.State,
		Price:             o.Price,
		PaymentMode:       string(o.PaymentMode),
		Product:           o.Product,
		StaffID:           o.StaffID,
		TrackingNo:        o.TrackingNo,
		DeliveryStatus:    string(o.DeliveryStatus),
		RawCourierStatus:  o.RawCourierStatus,
		CourierName:       o.CourierName,
		PaymentReceivedAt: o.PaymentReceivedAt,
		ReturnedAt:        o.ReturnedAt,
		CreatedAt:         o.CreatedAt,
	}
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func (r createProspectRequest) toModel() *domain.Prospect {
	return &domain.Prospect{
		Name:    r.Name,
		Phone:   r.Phone,
		Note:    r.Note,
		Source:  r.Source,
		StaffID: r.StaffID,
	}
}

func prospectToResponse(p domain.Prospect) prospectDTO {
	return prospectDTO{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Note:      p.Note,
		Source:    p.Source,
		StaffID:   p.StaffID,
		CreatedAt: p.CreatedAt,
	}
}

func prospectsToResponse(list []domain.Prospect) []prospectDTO {
	out := make([]prospectDTO, 0, len(list))
	for _, p := range list {
		out = append(out, prospectToResponse(p))
	}
	return out
}
