package service

import (
	"context"

	"retailapi/internal/apierror"
	"retailapi/internal/dto"
	"retailapi/internal/repository"
	"retailapi/internal/resource"
)

// CrudService implements the six entity operations on top of a resource
// definition. T is the model row returned by reads.
type CrudService[T any] interface {
	Listar(ctx context.Context) ([]T, error)
	ObtenerPorID(ctx context.Context, id int64) (*T, error)
	Crear(ctx context.Context, body resource.Body) (dto.MensajeResponse, error)
	Reemplazar(ctx context.Context, id int64, body resource.Body) (dto.MensajeResponse, error)
	ActualizarParcial(ctx context.Context, id int64, body resource.Body) (dto.MensajeResponse, error)
	Eliminar(ctx context.Context, id int64) (dto.MensajeResponse, error)
}

type crudService[T any] struct {
	def  *resource.Definition
	repo repository.CrudRepository
}

func NewCrudService[T any](def *resource.Definition, repo repository.CrudRepository) CrudService[T] {
	return &crudService[T]{def: def, repo: repo}
}

func (s *crudService[T]) Listar(ctx context.Context) ([]T, error) {
	list := make([]T, 0)
	if err := s.repo.List(ctx, s.def, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *crudService[T]) ObtenerPorID(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := s.repo.FindByID(ctx, s.def, id, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *crudService[T]) Crear(ctx context.Context, body resource.Body) (dto.MensajeResponse, error) {
	id, err := s.def.ParseKey(body)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	values, err := s.def.Parse(body, resource.ModeCreate)
	if err != nil {
		return dto.MensajeResponse{}, err
	}

	taken, err := s.repo.Exists(ctx, s.def.Table, s.def.Key, id)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if taken {
		return dto.MensajeResponse{}, apierror.Conflict("%s", s.def.DuplicateKeyMessage(id))
	}
	if err := s.checkUniques(ctx, values, values, nil); err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.checkReferences(ctx, values); err != nil {
		return dto.MensajeResponse{}, err
	}

	if err := s.repo.Insert(ctx, s.def, id, values); err != nil {
		return dto.MensajeResponse{}, err
	}
	return dto.MensajeResponse{Message: s.def.Message("cread"), ID: id}, nil
}

func (s *crudService[T]) Reemplazar(ctx context.Context, id int64, body resource.Body) (dto.MensajeResponse, error) {
	values, err := s.def.Parse(body, resource.ModeReplace)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.mustExist(ctx, id); err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.checkUniques(ctx, values, values, &id); err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.checkReferences(ctx, values); err != nil {
		return dto.MensajeResponse{}, err
	}
	return s.update(ctx, id, values)
}

func (s *crudService[T]) ActualizarParcial(ctx context.Context, id int64, body resource.Body) (dto.MensajeResponse, error) {
	values, err := s.def.Parse(body, resource.ModePatch)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	stored, err := s.repo.Current(ctx, s.def, id)
	if err != nil {
		return dto.MensajeResponse{}, err
	}

	merged := s.def.Merge(stored, values)
	if err := s.checkUniques(ctx, values, merged, &id); err != nil {
		return dto.MensajeResponse{}, err
	}
	if err := s.checkReferences(ctx, values); err != nil {
		return dto.MensajeResponse{}, err
	}
	if s.def.Check != nil {
		if err := s.def.Check(merged); err != nil {
			return dto.MensajeResponse{}, err
		}
	}
	return s.update(ctx, id, values)
}

func (s *crudService[T]) Eliminar(ctx context.Context, id int64) (dto.MensajeResponse, error) {
	for _, dep := range s.def.Dependents {
		used, err := s.repo.Exists(ctx, dep.Table, dep.Column, id)
		if err != nil {
			return dto.MensajeResponse{}, err
		}
		if used {
			return dto.MensajeResponse{}, apierror.Conflict("%s", s.def.DependentMessage(dep.Label))
		}
	}

	n, err := s.repo.Delete(ctx, s.def, id)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	if n == 0 {
		return dto.MensajeResponse{}, apierror.NotFound("%s", s.def.NotFoundMessage())
	}
	return dto.MensajeResponse{Message: s.def.Message("eliminad"), ID: id}, nil
}

func (s *crudService[T]) update(ctx context.Context, id int64, values resource.Values) (dto.MensajeResponse, error) {
	n, err := s.repo.Update(ctx, s.def, id, values)
	if err != nil {
		return dto.MensajeResponse{}, err
	}
	// PostgreSQL counts matched rows, so zero means the row is gone.
	if n == 0 {
		return dto.MensajeResponse{}, apierror.NotFound("%s", s.def.NotFoundMessage())
	}
	return dto.MensajeResponse{Message: s.def.Message("actualizad"), ID: id}, nil
}

func (s *crudService[T]) mustExist(ctx context.Context, id int64) error {
	ok, err := s.repo.Exists(ctx, s.def.Table, s.def.Key, id)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.NotFound("%s", s.def.NotFoundMessage())
	}
	return nil
}

// checkUniques verifies every unique constraint touched by changed against
// the row as it will be stored.
func (s *crudService[T]) checkUniques(ctx context.Context, changed, row resource.Values, exclude *int64) error {
	full := row.Map()
	for _, u := range s.def.Uniques {
		if !touches(u, changed) || hasNull(u, full) {
			continue
		}
		dup, err := s.repo.Duplicate(ctx, s.def, u, full, exclude)
		if err != nil {
			return err
		}
		if dup {
			return apierror.Conflict("%s", u.Message)
		}
	}
	return nil
}

func (s *crudService[T]) checkReferences(ctx context.Context, values resource.Values) error {
	for _, ref := range s.def.References {
		v, ok := values.Get(ref.Column)
		if !ok || v == nil {
			continue
		}
		found, err := s.repo.Exists(ctx, ref.Table, ref.Key, v)
		if err != nil {
			return err
		}
		if !found {
			return apierror.BadRequest("%s", ref.MissingReferenceMessage(v))
		}
	}
	return nil
}

func touches(u resource.Unique, changed resource.Values) bool {
	for _, col := range u.Columns {
		if changed.Has(col) {
			return true
		}
	}
	return false
}

func hasNull(u resource.Unique, row map[string]interface{}) bool {
	for _, col := range u.Columns {
		if v, ok := row[col]; !ok || v == nil {
			return true
		}
	}
	return false
}
