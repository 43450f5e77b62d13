package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON-array columns. Each slice type serializes to a text column the same
// way StringList does; RedFlags additionally tolerates the legacy
// plain-string-array encoding.

type (
	CheckIns   []CheckIn
	OneOnOnes  []OneOnOne
	RedFlags   []RedFlag
	Goals      []Goal
	Milestones []Milestone
)

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type: %T", value)
	}
}

func (c CheckIns) Value() (driver.Value, error)  { return jsonValue([]CheckIn(c)) }
func (c *CheckIns) Scan(value interface{}) error { return jsonScan(value, (*[]CheckIn)(c)) }

func (o OneOnOnes) Value() (driver.Value, error)  { return jsonValue([]OneOnOne(o)) }
func (o *OneOnOnes) Scan(value interface{}) error { return jsonScan(value, (*[]OneOnOne)(o)) }

func (g Goals) Value() (driver.Value, error)  { return jsonValue([]Goal(g)) }
func (g *Goals) Scan(value interface{}) error { return jsonScan(value, (*[]Goal)(g)) }

func (m Milestones) Value() (driver.Value, error)  { return jsonValue([]Milestone(m)) }
func (m *Milestones) Scan(value interface{}) error { return jsonScan(value, (*[]Milestone)(m)) }

func (r RedFlags) Value() (driver.Value, error) { return jsonValue([]RedFlag(r)) }

// Scan accepts both the structured form and the legacy plain-string array.
func (r *RedFlags) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported column type: %T", value)
	}
	var structured []RedFlag
	if err := json.Unmarshal(raw, &structured); err == nil {
		*r = structured
		return nil
	}
	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return err
	}
	flags := make([]RedFlag, 0, len(legacy))
	for _, f := range legacy {
		flags = append(flags, RedFlag{Flag: f})
	}
	*r = flags
	return nil
}

// UnmarshalJSON lets API payloads and file snapshots use either encoding.
func (r *RedFlags) UnmarshalJSON(data []byte) error {
	var structured []RedFlag
	if err := json.Unmarshal(data, &structured); err == nil {
		*r = structured
		return nil
	}
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	flags := make([]RedFlag, 0, len(legacy))
	for _, f := range legacy {
		flags = append(flags, RedFlag{Flag: f})
	}
	*r = flags
	return nil
}
