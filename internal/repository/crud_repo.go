package repository

import (
	"context"

	"retailapi/internal/resource"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CrudRepository runs the generic statements behind every entity endpoint.
// Table and column names always come from a resource.Definition, never from
// the request.
type CrudRepository interface {
	List(ctx context.Context, def *resource.Definition, dest interface{}) error
	FindByID(ctx context.Context, def *resource.Definition, id int64, dest interface{}) error
	// Current loads the stored row as a column map.
	Current(ctx context.Context, def *resource.Definition, id int64) (map[string]interface{}, error)
	Exists(ctx context.Context, table, column string, value interface{}) (bool, error)
	// Duplicate reports whether another row already holds the values of u.
	// exclude skips the row being updated.
	Duplicate(ctx context.Context, def *resource.Definition, u resource.Unique, row map[string]interface{}, exclude *int64) (bool, error)
	Insert(ctx context.Context, def *resource.Definition, id int64, values resource.Values) error
	Update(ctx context.Context, def *resource.Definition, id int64, values resource.Values) (int64, error)
	Delete(ctx context.Context, def *resource.Definition, id int64) (int64, error)
}

type crudRepository struct{ db *gorm.DB }

func NewCrudRepository(db *gorm.DB) CrudRepository {
	return &crudRepository{db: db}
}

func eq(column string, value interface{}) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

func (r *crudRepository) List(ctx context.Context, def *resource.Definition, dest interface{}) error {
	err := r.db.WithContext(ctx).Table(def.Table).Order(def.Order).Find(dest).Error
	return translate(def, opRead, err)
}

func (r *crudRepository) FindByID(ctx context.Context, def *resource.Definition, id int64, dest interface{}) error {
	err := r.db.WithContext(ctx).Table(def.Table).Where(eq(def.Key, id)).Take(dest).Error
	return translate(def, opRead, err)
}

func (r *crudRepository) Current(ctx context.Context, def *resource.Definition, id int64) (map[string]interface{}, error) {
	row := map[string]interface{}{}
	err := r.db.WithContext(ctx).Table(def.Table).Where(eq(def.Key, id)).Take(&row).Error
	if err != nil {
		return nil, translate(def, opRead, err)
	}
	return row, nil
}

func (r *crudRepository) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(table).Where(eq(column, value)).Count(&n).Error
	return n > 0, err
}

func (r *crudRepository) Duplicate(ctx context.Context, def *resource.Definition, u resource.Unique, row map[string]interface{}, exclude *int64) (bool, error) {
	q := r.db.WithContext(ctx).Table(def.Table)
	for _, col := range u.Columns {
		v := row[col]
		if s, ok := v.(string); ok && u.Fold {
			q = q.Where(clause.Expr{SQL: "LOWER(?) = LOWER(?)", Vars: []interface{}{clause.Column{Name: col}, s}})
			continue
		}
		q = q.Where(eq(col, v))
	}
	if exclude != nil {
		q = q.Where(clause.Neq{Column: clause.Column{Name: def.Key}, Value: *exclude})
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *crudRepository) Insert(ctx context.Context, def *resource.Definition, id int64, values resource.Values) error {
	row := values.Map()
	row[def.Key] = id
	err := r.db.WithContext(ctx).Table(def.Table).Create(row).Error
	return translate(def, opWrite, err)
}

func (r *crudRepository) Update(ctx context.Context, def *resource.Definition, id int64, values resource.Values) (int64, error) {
	res := r.db.WithContext(ctx).Table(def.Table).Where(eq(def.Key, id)).Updates(values.Map())
	return res.RowsAffected, translate(def, opWrite, res.Error)
}

func (r *crudRepository) Delete(ctx context.Context, def *resource.Definition, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM ? WHERE ? = ?",
		clause.Table{Name: def.Table}, clause.Column{Name: def.Key}, id)
	return res.RowsAffected, translate(def, opDelete, res.Error)
}
