// Package bolt implementa el adaptador de persistencia sobre bbolt: el
// documento completo serializado como JSON y el marcador de última sesión,
// cada uno en su clave dentro de un único bucket local.
package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/jhoicas/almox-api/internal/domain/entity"
	"github.com/jhoicas/almox-api/internal/store"
)

var _ store.Persister = (*Store)(nil)

const (
	bucketName  = "almox"
	documentKey = "document"
	sessionKey  = "session"
)

// Store adaptador de persistencia sobre un archivo bbolt.
type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo bbolt y asegura el bucket. El timeout evita
// bloquearse para siempre si otro proceso tiene el archivo abierto.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Load lee y decodifica el documento. Devuelve nil, nil si el slot está vacío.
func (s *Store) Load() (*entity.Document, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(documentKey)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar documento: %w", err)
	}
	return &doc, nil
}

// Save serializa el documento y lo escribe como una sola unidad.
func (s *Store) Save(doc *entity.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(documentKey), raw)
	})
	if err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	return nil
}

// LoadSession lee el marcador de última sesión; "" si no hay.
func (s *Store) LoadSession() (string, error) {
	var id string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(sessionKey)); v != nil {
			id = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("leer marcador de sesión: %w", err)
	}
	return id, nil
}

// SaveSession persiste el id del usuario logueado.
func (s *Store) SaveSession(userID string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(sessionKey), []byte(userID))
	})
	if err != nil {
		return fmt.Errorf("guardar marcador de sesión: %w", err)
	}
	return nil
}

// ClearSession borra el marcador de sesión.
func (s *Store) ClearSession() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(sessionKey))
	})
	if err != nil {
		return fmt.Errorf("borrar marcador de sesión: %w", err)
	}
	return nil
}

// Close cierra el archivo bbolt.
func (s *Store) Close() error {
	return s.db.Close()
}
