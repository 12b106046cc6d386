// Package dto JSON-представления HTTP API и их сборка из сущностей.
package dto

import (
	"time"

	"tracker/internal/entities"
	"tracker/pkg/paging"
)

type Error struct {
	Error string `json:"error"`
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func FromPage[E, T any](p paging.Page[E], convert func(E) T) Page[T] {
	items := make([]T, len(p.Items))
	for i, item := range p.Items {
		items[i] = convert(item)
	}
	return Page[T]{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func Map[E, T any](items []E, convert func(E) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return out
}

type RowError struct {
	Row     int      `json:"row"`
	Missing []string `json:"missing"`
}

type UploadResult struct {
	Uploaded int        `json:"uploaded"`
	Skipped  int        `json:"skipped"`
	Rejected []RowError `json:"rejected,omitempty"`
}

func FromUploadResult(r *entities.UploadResult) UploadResult {
	return UploadResult{
		Uploaded: r.Uploaded,
		Skipped:  r.Skipped,
		Rejected: Map(r.Rejected, func(e entities.ImportRowError) RowError {
			return RowError{Row: e.Row, Missing: e.Missing}
		}),
	}
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
