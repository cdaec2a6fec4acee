package repository

import (
	"context"
	"fmt"

	"orderdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DeviceRepo maps staff members to their WhatsApp-sending devices.
type DeviceRepo struct{ db *pgxpool.Pool }

// NewDeviceRepo creates a new DeviceRepo.
func NewDeviceRepo(db *pgxpool.Pool) *DeviceRepo { return &DeviceRepo{db: db} }

// GetByStaff returns the device configured for a staff member, or nil when
// none is registered.
func (r *DeviceRepo) GetByStaff(ctx context.Context, staffID string) (*domain.Device, error) {
	var d domain.Device
	err := r.db.QueryRow(ctx,
		`SELECT staff_id, device_id, phone, connected FROM devices WHERE staff_id=$1`, staffID,
	).Scan(&d.StaffID, &d.DeviceID, &d.Phone, &d.Connected)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device for staff %q: %w", staffID, err)
	}
	return &d, nil
}
