package leads

import (
	"regexp"
	"strconv"
	"strings"
)

// CommandKind tags a parsed relay message variant.
type CommandKind string

const (
	KindLeadEntry    CommandKind = "lead_entry"
	KindOrderEntry   CommandKind = "order_entry"
	KindStatusQuery  CommandKind = "status_query"
	KindUnrecognized CommandKind = "unrecognized"
)

// Command is the tagged result of parsing one relay message. Exactly one of
// the payload fields matching Kind is set.
type Command struct {
	Kind   CommandKind
	Lead   *LeadEntry
	Order  *OrderEntry
	Status *StatusQuery
}

// LeadEntry captures a prospect: "lead: name | phone | note".
type LeadEntry struct {
	Name  string
	Phone string
	Note  string
}

// OrderEntry captures a full order:
// "order: name | phone | address | postcode | city | state | product | price | cod".
type OrderEntry struct {
	Name        string
	Phone       string
	Address     string
	Postcode    string
	City        string
	State       string
	Product     string
	Price       float64
	PaymentMode string
}

// StatusQuery asks for the delivery status of a tracking number:
// "status: TRACKING".
type StatusQuery struct {
	TrackingNo string
}

// commandRule binds a head-tag pattern to a variant builder. Rules are
// evaluated in declared order; the first matching tag wins. A matching tag
// with an invalid body still claims the message (no fallthrough to later
// rules), yielding Unrecognized.
type commandRule struct {
	tag       *regexp.Regexp
	minFields int
	build     func(fields []string) Command
}

var commandRules = []commandRule{
	{
		tag:       regexp.MustCompile(`(?i)^lead\s*:`),
		minFields: 2,
		build: func(f []string) Command {
			le := &LeadEntry{Name: f[0], Phone: f[1]}
			if len(f) > 2 {
				le.Note = f[2]
			}
			return Command{Kind: KindLeadEntry, Lead: le}
		},
	},
	{
		tag:       regexp.MustCompile(`(?i)^order\s*:`),
		minFields: 9,
		build: func(f []string) Command {
			price, err := strconv.ParseFloat(f[7], 64)
			if err != nil || price < 0 {
				return Command{Kind: KindUnrecognized}
			}
			return Command{Kind: KindOrderEntry, Order: &OrderEntry{
				Name:        f[0],
				Phone:       f[1],
				Address:     f[2],
				Postcode:    f[3],
				City:        f[4],
				State:       f[5],
				Product:     f[6],
				Price:       price,
				PaymentMode: strings.ToLower(f[8]),
			}}
		},
	},
	{
		tag:       regexp.MustCompile(`(?i)^status\s*:`),
		minFields: 1,
		build: func(f []string) Command {
			return Command{Kind: KindStatusQuery, Status: &StatusQuery{TrackingNo: f[0]}}
		},
	},
}

// Parse classifies a relay message into one of the command variants. The
// body after the tag is pipe-separated; fields are whitespace-trimmed.
func Parse(message string) Command {
	msg := strings.TrimSpace(message)
	for _, r := range commandRules {
		loc := r.tag.FindStringIndex(msg)
		if loc == nil {
			continue
		}
		fields := splitFields(msg[loc[1]:])
		if len(fields) < r.minFields {
			return Command{Kind: KindUnrecognized}
		}
		return r.build(fields)
	}
	return Command{Kind: KindUnrecognized}
}

func splitFields(body string) []string {
	parts := strings.Split(body, "|")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fields = append(fields, p)
	}
	return fields
}
