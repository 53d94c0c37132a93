// Package repotest provides an in-memory repository.CrudRepository for tests
// of the layers above the database.
package repotest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"retailapi/internal/apierror"
	"retailapi/internal/repository"
	"retailapi/internal/resource"

	"github.com/shopspring/decimal"
)

// Memory stores rows as column maps keyed by table and primary key. It does
// not enforce foreign keys or unique constraints beyond the primary key, so
// tests observe only the service pre-checks.
type Memory struct {
	mu     sync.Mutex
	tables map[string]map[int64]map[string]interface{}
	keys   map[string]string

	// Err, when set, is returned by every call.
	Err error
}

var _ repository.CrudRepository = (*Memory)(nil)

func NewMemory() *Memory {
	m := &Memory{
		tables: make(map[string]map[int64]map[string]interface{}),
		keys:   make(map[string]string),
	}
	for _, def := range resource.All() {
		m.keys[def.Table] = def.Key
	}
	return m
}

// Seed stores row in table as is. row must hold the table's key as an int64
// (or int) under the key column.
func (m *Memory) Seed(def *resource.Definition, row map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := toInt64(row[def.Key])
	m.table(def.Table)[id] = copyRow(row)
}

// Row returns a copy of the stored row.
func (m *Memory) Row(def *resource.Definition, id int64) (map[string]interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.table(def.Table)[id]
	return copyRow(row), ok
}

// Count returns the number of rows in def's table.
func (m *Memory) Count(def *resource.Definition) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.table(def.Table))
}

func (m *Memory) table(name string) map[int64]map[string]interface{} {
	t, ok := m.tables[name]
	if !ok {
		t = make(map[int64]map[string]interface{})
		m.tables[name] = t
	}
	return t
}

func (m *Memory) List(_ context.Context, def *resource.Definition, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	t := m.table(def.Table)
	ids := make([]int64, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, t[id])
	}
	return convert(rows, dest)
}

func (m *Memory) FindByID(_ context.Context, def *resource.Definition, id int64, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	row, ok := m.table(def.Table)[id]
	if !ok {
		return apierror.NotFound("%s", def.NotFoundMessage())
	}
	return convert(row, dest)
}

func (m *Memory) Current(_ context.Context, def *resource.Definition, id int64) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	row, ok := m.table(def.Table)[id]
	if !ok {
		return nil, apierror.NotFound("%s", def.NotFoundMessage())
	}
	return copyRow(row), nil
}

func (m *Memory) Exists(_ context.Context, table, column string, value interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for _, row := range m.table(table) {
		if same(row[column], value, false) {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Duplicate(_ context.Context, def *resource.Definition, u resource.Unique, row map[string]interface{}, exclude *int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for id, stored := range m.table(def.Table) {
		if exclude != nil && id == *exclude {
			continue
		}
		match := true
		for _, col := range u.Columns {
			if !same(stored[col], row[col], u.Fold) {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Insert(_ context.Context, def *resource.Definition, id int64, values resource.Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	t := m.table(def.Table)
	if _, ok := t[id]; ok {
		return apierror.Conflict("%s", def.DuplicateKeyMessage(id))
	}
	row := values.Map()
	row[def.Key] = id
	t[id] = row
	return nil
}

func (m *Memory) Update(_ context.Context, def *resource.Definition, id int64, values resource.Values) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	row, ok := m.table(def.Table)[id]
	if !ok {
		return 0, nil
	}
	for _, a := range values {
		row[a.Column] = a.Value
	}
	return 1, nil
}

func (m *Memory) Delete(_ context.Context, def *resource.Definition, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	t := m.table(def.Table)
	if _, ok := t[id]; !ok {
		return 0, nil
	}
	delete(t, id)
	return 1, nil
}

// convert fills dest from stored rows through their JSON form, which is how
// the models are tagged.
func convert(src, dest interface{}) error {
	b, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("repotest: marshal: %w", err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("repotest: unmarshal: %w", err)
	}
	return nil
}

func copyRow(row map[string]interface{}) map[string]interface{} {
	if row == nil {
		return nil
	}
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func same(a, b interface{}, fold bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return false
		}
		if fold {
			return strings.EqualFold(sa, sb)
		}
		return sa == sb
	}
	if da, ok := a.(decimal.Decimal); ok {
		db, ok := b.(decimal.Decimal)
		return ok && da.Equal(db)
	}
	if isInt(a) && isInt(b) {
		return toInt64(a) == toInt64(b)
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func isInt(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64:
		return true
	}
	return false
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}
