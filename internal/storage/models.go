package storage

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/findy-ai/property-engine/internal/finder"
)

// SavedSearch is a named set of search criteria a user wants to rerun later.
type SavedSearch struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Query     string         `json:"query"`
	Criteria  CriteriaColumn `json:"criteria"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// WorkPlan is a client follow-up plan generated from a search session, e.g.
// "visit these three listings this week".
type WorkPlan struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Status    string      `json:"status"`
	Steps     StepsColumn `json:"steps"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Work plan statuses.
const (
	WorkPlanStatusOpen      = "open"
	WorkPlanStatusDone      = "done"
	WorkPlanStatusCancelled = "cancelled"
)

// CriteriaColumn stores finder criteria as a JSON column.
type CriteriaColumn struct {
	finder.Criteria
}

// Value implements driver.Valuer.
func (c CriteriaColumn) Value() (driver.Value, error) {
	return json.Marshal(c.Criteria)
}

// Scan implements sql.Scanner.
func (c *CriteriaColumn) Scan(value interface{}) error {
	if value == nil {
		c.Criteria = finder.Criteria{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &c.Criteria)
	case string:
		return json.Unmarshal([]byte(v), &c.Criteria)
	default:
		return fmt.Errorf("cannot scan %T into CriteriaColumn", value)
	}
}

// StepsColumn stores a work plan's step list as a JSON column.
type StepsColumn []string

// Value implements driver.Valuer.
func (s StepsColumn) Value() (driver.Value, error) {
	if s == nil {
		s = StepsColumn{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StepsColumn) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StepsColumn", value)
	}
}
