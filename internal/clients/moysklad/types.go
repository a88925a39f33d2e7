package moysklad

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MoySklad reports moments in Moscow time without a zone suffix
var moscow = time.FixedZone("MSK", 3*60*60)

const momentLayout = "2006-01-02 15:04:05.000"

type Meta struct {
	Href   string `json:"href"`
	Type   string `json:"type"`
	Size   int    `json:"size"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// ID returns the last path segment of an entity href
func (m Meta) ID() string {
	href := strings.TrimRight(m.Href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		href = href[i+1:]
	}
	if i := strings.Index(href, "?"); i >= 0 {
		href = href[:i]
	}
	return href
}

type entityRef struct {
	Meta Meta `json:"meta"`
}

type Moment struct {
	time.Time
}

func (m *Moment) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	layout := momentLayout
	if len(s) == len("2006-01-02 15:04:05") {
		layout = time.DateTime
	}
	t, err := time.ParseInLocation(layout, s, moscow)
	if err != nil {
		return err
	}
	m.Time = t
	return nil
}

// Demand is a shipment document; Sum is in kopecks
type Demand struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Moment  Moment    `json:"moment"`
	Updated Moment    `json:"updated"`
	Sum     float64   `json:"sum"`
	Agent   entityRef `json:"agent"`
}

// AgentID is the counterparty id the demand was shipped to
func (d Demand) AgentID() string {
	return d.Agent.Meta.ID()
}

// Amount converts the kopeck sum to whole rubles, rounding half away from zero
func (d Demand) Amount() int64 {
	return decimal.NewFromFloat(d.Sum).Div(decimal.NewFromInt(100)).Round(0).IntPart()
}

type Counterparty struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ActualAddress string `json:"actualAddress"`
}

type listResponse[T any] struct {
	Meta Meta `json:"meta"`
	Rows []T  `json:"rows"`
}

type apiError struct {
	Errors []struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	} `json:"errors"`
}

func (e apiError) message() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msgs = append(msgs, item.Error)
	}
	return strings.Join(msgs, "; ")
}
