// Package store es el dueño del documento en memoria: lecturas por copia y
// un único punto de entrada de mutación con write-through a la persistencia.
package store

import (
	"fmt"
	"sync"

	"github.com/jhoicas/almox-api/internal/domain"
	"github.com/jhoicas/almox-api/internal/domain/entity"
)

// Persister puerto del adaptador de persistencia: guarda el documento JSON
// completo y el marcador de última sesión en un slot clave-valor durable.
type Persister interface {
	Load() (*entity.Document, error) // nil, nil si el slot está vacío
	Save(doc *entity.Document) error
	LoadSession() (string, error) // "" si no hay marcador
	SaveSession(userID string) error
	ClearSession() error
}

// Store mantiene el Document en memoria. El mutex serializa las mutaciones:
// cada operación corre completa antes de admitir la siguiente, aunque el
// servidor HTTP atienda peticiones concurrentes.
type Store struct {
	mu        sync.RWMutex
	doc       *entity.Document
	persister Persister
}

// Open carga el documento desde el persister; si el slot está vacío siembra
// el documento demo y lo persiste antes de devolver el store.
func Open(p Persister) (*Store, error) {
	doc, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar documento: %w", err)
	}
	if doc == nil {
		doc = SeedDocument()
		if err := p.Save(doc); err != nil {
			return nil, fmt.Errorf("persistir documento inicial: %w", err)
		}
	}
	return &Store{doc: doc, persister: p}, nil
}

// Snapshot devuelve una copia profunda del documento. Nunca se exponen
// referencias vivas: mutar el snapshot no afecta al store.
func (s *Store) Snapshot() *entity.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update ejecuta fn sobre el documento vivo y, si fn devuelve nil, hace
// write-through al persister. fn debe validar antes de mutar: un error de fn
// no revierte cambios parciales. Si falla el write-through la mutación en
// memoria sigue siendo observable y se devuelve un error que envuelve
// ErrPersistence; no hay rollback (limitación aceptada, el documento en
// disco puede quedar detrás del de memoria hasta la próxima escritura).
func (s *Store) Update(fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	if err := s.persister.Save(s.doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
