package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Snapshot плоский набор полей сущности на момент решения, хранится в jsonb
type Snapshot map[string]string

func (s Snapshot) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *Snapshot) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.Errorf("неподдерживаемый тип значения snapshot: %T", value)
		}
		data = []byte(str)
	}
	return json.Unmarshal(data, s)
}
