package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almox-api/internal/domain"
	"github.com/jhoicas/almox-api/internal/domain/entity"
	"github.com/jhoicas/almox-api/internal/store"
)

// memPersister persister en memoria para tests, con fallo de escritura
// inyectable.
type memPersister struct {
	doc      *entity.Document
	session  string
	failSave bool
	saves    int
}

func (m *memPersister) Load() (*entity.Document, error) {
	if m.doc == nil {
		return nil, nil
	}
	return m.doc.Clone(), nil
}

func (m *memPersister) Save(doc *entity.Document) error {
	if m.failSave {
		return errors.New("disco lleno")
	}
	m.saves++
	m.doc = doc.Clone()
	return nil
}

func (m *memPersister) LoadSession() (string, error)  { return m.session, nil }
func (m *memPersister) SaveSession(id string) error   { m.session = id; return nil }
func (m *memPersister) ClearSession() error           { m.session = ""; return nil }

func TestOpen_SiembraCuandoElSlotEstaVacio(t *testing.T) {
	p := &memPersister{}
	st, err := store.Open(p)
	require.NoError(t, err)

	doc := st.Snapshot()
	assert.Len(t, doc.Users, 3, "el seed debe traer tres usuarios")
	assert.Len(t, doc.Products, 3)
	assert.Len(t, doc.Movements, 3)
	assert.Equal(t, 1, p.saves, "el documento seed debe persistirse al abrir")
}

func TestOpen_CargaDocumentoExistenteSinResembrar(t *testing.T) {
	p := &memPersister{doc: &entity.Document{DBName: "almox_db", Products: []entity.Product{{ID: "p1", Name: "Trena"}}}}
	st, err := store.Open(p)
	require.NoError(t, err)

	doc := st.Snapshot()
	require.Len(t, doc.Products, 1)
	assert.Equal(t, "Trena", doc.Products[0].Name)
	assert.Zero(t, p.saves, "abrir con documento existente no debe escribir")
}

// El snapshot es una copia profunda: mutarlo no debe afectar al store.
func TestSnapshot_NoExponeReferenciasVivas(t *testing.T) {
	st, err := store.Open(&memPersister{})
	require.NoError(t, err)

	snap := st.Snapshot()
	snap.Products[0].Name = "hackeado"
	snap.Products[0].Features[0] = "hackeado"
	snap.Users[0].Password = "hackeado"

	fresh := st.Snapshot()
	assert.Equal(t, "Martelo de Unha 16 oz MASTER", fresh.Products[0].Name)
	assert.Equal(t, "cabo tubular", fresh.Products[0].Features[0])
	assert.Equal(t, "admin123", fresh.Users[0].Password)
}

func TestUpdate_HaceWriteThroughAlPersister(t *testing.T) {
	p := &memPersister{}
	st, err := store.Open(p)
	require.NoError(t, err)

	err = st.Update(func(doc *entity.Document) error {
		doc.Products = append(doc.Products, entity.Product{ID: "p_nuevo", Name: "Nivel de Bolha"})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, p.saves)
	require.NotNil(t, p.doc.FindProduct("p_nuevo"), "la mutación debe quedar en el documento persistido")
}

func TestUpdate_ErrorDeFnNoEscribe(t *testing.T) {
	p := &memPersister{}
	st, err := store.Open(p)
	require.NoError(t, err)
	savesAntes := p.saves

	sentinel := errors.New("validación falló")
	err = st.Update(func(doc *entity.Document) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, savesAntes, p.saves, "un error de fn no debe disparar write-through")
}

// Si falla el write-through la mutación en memoria sigue siendo observable:
// limitación aceptada del diseño, sin rollback.
func TestUpdate_FalloDeEscrituraMantieneMutacionEnMemoria(t *testing.T) {
	p := &memPersister{}
	st, err := store.Open(p)
	require.NoError(t, err)

	p.failSave = true
	err = st.Update(func(doc *entity.Document) error {
		doc.Products[0].Qty = 99
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 99, st.Snapshot().Products[0].Qty)
}
