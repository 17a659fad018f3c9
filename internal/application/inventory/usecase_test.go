package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almox-api/internal/application/dto"
	"github.com/jhoicas/almox-api/internal/application/inventory"
	"github.com/jhoicas/almox-api/internal/domain"
	"github.com/jhoicas/almox-api/internal/domain/entity"
	"github.com/jhoicas/almox-api/internal/store"
	"github.com/jhoicas/almox-api/pkg/logger"
)

type memPersister struct {
	doc     *entity.Document
	session string
}

func (m *memPersister) Load() (*entity.Document, error) {
	if m.doc == nil {
		return nil, nil
	}
	return m.doc.Clone(), nil
}
func (m *memPersister) Save(doc *entity.Document) error { m.doc = doc.Clone(); return nil }
func (m *memPersister) LoadSession() (string, error)    { return m.session, nil }
func (m *memPersister) SaveSession(id string) error     { m.session = id; return nil }
func (m *memPersister) ClearSession() error             { m.session = ""; return nil }

// fixedSession stub del puerto Sessions; "" simula proceso sin login.
type fixedSession string

func (s fixedSession) CurrentUserID() string { return string(s) }

func newUC(t *testing.T, session string) (*inventory.UseCase, *store.Store) {
	t.Helper()
	st, err := store.Open(&memPersister{})
	require.NoError(t, err)
	return inventory.New(st, fixedSession(session), logger.Nop()), st
}

func hoy() string { return time.Now().Format(entity.DateLayout) }

// ──────────────────────────────────────────────────────────────────────────────
// CreateProduct
// ──────────────────────────────────────────────────────────────────────────────

// Crear con cantidad inicial positiva sintetiza exactamente un movimiento de
// entrada con esa cantidad, fechado hoy y atribuido al usuario de la sesión.
func TestCreateProduct_CantidadInicialGeneraEntrada(t *testing.T) {
	uc, st := newUC(t, "u_admin")
	movsAntes := len(st.Snapshot().Movements)

	out, err := uc.CreateProduct(dto.CreateProductRequest{Name: "Trena 5m", Brand: "MASTER", Qty: 7, Min: 2})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	doc := st.Snapshot()
	require.Len(t, doc.Movements, movsAntes+1)
	mov := doc.Movements[len(doc.Movements)-1]
	assert.Equal(t, out.ID, mov.ProductID)
	assert.Equal(t, entity.MovementEntrada, mov.Type)
	assert.Equal(t, 7, mov.Qty)
	assert.Equal(t, hoy(), mov.Date)
	assert.Equal(t, "u_admin", mov.UserID)
}

// Sin sesión activa el movimiento inicial se atribuye al actor system.
func TestCreateProduct_SinSesionAtribuyeASystem(t *testing.T) {
	uc, st := newUC(t, "")

	out, err := uc.CreateProduct(dto.CreateProductRequest{Name: "Serra Copo", Qty: 3})
	require.NoError(t, err)

	doc := st.Snapshot()
	mov := doc.Movements[len(doc.Movements)-1]
	assert.Equal(t, out.ID, mov.ProductID)
	assert.Equal(t, entity.SystemUserID, mov.UserID)
}

func TestCreateProduct_CantidadCeroNoGeneraMovimiento(t *testing.T) {
	uc, st := newUC(t, "u_admin")
	movsAntes := len(st.Snapshot().Movements)

	_, err := uc.CreateProduct(dto.CreateProductRequest{Name: "Esquadro", Qty: 0, Min: 1})
	require.NoError(t, err)
	assert.Len(t, st.Snapshot().Movements, movsAntes)
}

func TestCreateProduct_Validacion(t *testing.T) {
	uc, st := newUC(t, "u_admin")
	antes := len(st.Snapshot().Products)

	casos := []struct {
		nombre string
		in     dto.CreateProductRequest
		campo  string
	}{
		{"nombre vacío", dto.CreateProductRequest{Name: "", Qty: 1}, "name"},
		{"nombre en blanco", dto.CreateProductRequest{Name: "   ", Qty: 1}, "name"},
		{"qty negativa", dto.CreateProductRequest{Name: "Trena", Qty: -1}, "qty"},
		{"min negativo", dto.CreateProductRequest{Name: "Trena", Min: -2}, "min"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.CreateProduct(tc.in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.campo, verr.Field)
		})
	}
	assert.Len(t, st.Snapshot().Products, antes, "una validación fallida no cambia estado")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_AplicaParcheConservandoID(t *testing.T) {
	uc, st := newUC(t, "u_admin")
	movsAntes := len(st.Snapshot().Movements)

	nombre := "Martelo de Unha 20 oz MASTER"
	min := 4
	out, err := uc.UpdateProduct("p_martelo_16", dto.UpdateProductRequest{Name: &nombre, Min: &min})
	require.NoError(t, err)

	assert.Equal(t, "p_martelo_16", out.ID)
	assert.Equal(t, nombre, out.Name)
	assert.Equal(t, 4, out.Min)
	assert.Equal(t, "MASTER", out.Brand, "los campos no parcheados se conservan")
	assert.Len(t, st.Snapshot().Movements, movsAntes, "actualizar no emite movimiento")
}

// Features se reemplaza completa, no se mezcla con la anterior.
func TestUpdateProduct_FeaturesSeReemplazanCompletas(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	out, err := uc.UpdateProduct("p_martelo_16", dto.UpdateProductRequest{Features: []string{"cabo de madera"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"cabo de madera"}, out.Features)
}

// Un parche sin name (puntero nil) es válido: el campo ausente se conserva
// y la regla de no-blanco solo aplica cuando el campo viene presente.
func TestUpdateProduct_ParcheSinNombre(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	qty := 7
	out, err := uc.UpdateProduct("p_martelo_16", dto.UpdateProductRequest{Qty: &qty})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Qty)
	assert.Equal(t, "Martelo de Unha 16 oz MASTER", out.Name, "name ausente no se toca")
}

// Un name presente pero en blanco sí se rechaza.
func TestUpdateProduct_NombreEnBlanco(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	blanco := "   "
	_, err := uc.UpdateProduct("p_martelo_16", dto.UpdateProductRequest{Name: &blanco})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	_, err := uc.UpdateProduct("p_fantasma", dto.UpdateProductRequest{})
	var nferr *domain.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "p_fantasma", nferr.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteProduct
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un producto elimina en cascada todos sus movimientos y solo los
// suyos, dentro de la misma mutación.
func TestDeleteProduct_CascadaSobreSusMovimientos(t *testing.T) {
	uc, st := newUC(t, "u_admin")

	// Un movimiento extra del producto a borrar y uno de otro producto.
	_, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_martelo_16", Type: entity.MovementSaida, Qty: 2, Date: "2025-11-02", UserName: "José Almeida",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct("p_martelo_16"))

	doc := st.Snapshot()
	assert.Nil(t, doc.FindProduct("p_martelo_16"))
	for _, m := range doc.Movements {
		assert.NotEqual(t, "p_martelo_16", m.ProductID, "no deben quedar movimientos del producto borrado")
	}
	assert.Len(t, doc.Movements, 2, "los movimientos de otros productos quedan intactos")
}

func TestDeleteProduct_NoExiste(t *testing.T) {
	uc, _ := newUC(t, "u_admin")
	err := uc.DeleteProduct("p_fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	out, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_furadeira_500", Type: entity.MovementEntrada, Qty: 4, Date: "2025-11-05", UserName: "Maria Silva",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Qty) // 5 + 4
}

func TestRegisterMovement_SaidaRestaStock(t *testing.T) {
	uc, st := newUC(t, "u_admin")

	out, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_furadeira_500", Type: entity.MovementSaida, Qty: 4, Date: "2025-11-05", UserName: "Maria Silva",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Qty) // 5 - 4
	assert.True(t, out.Qty < out.Min, "el caller puede detectar el cruce de stock mínimo")

	mov := st.Snapshot().Movements[3]
	assert.Equal(t, entity.MovementSaida, mov.Type)
	assert.Equal(t, 4, mov.Qty)
	assert.Equal(t, "u_maria", mov.UserID, "nombre conocido resuelve al usuario existente")
}

// Una salida mayor al stock disponible no cambia nada: ni el producto, ni el
// historial, ni los usuarios.
func TestRegisterMovement_SaidaInsuficienteNoCambiaEstado(t *testing.T) {
	uc, st := newUC(t, "u_admin")
	antes := st.Snapshot()

	_, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_furadeira_500", Type: entity.MovementSaida, Qty: 6, Date: "2025-11-05", UserName: "Persona Nueva",
	})
	var serr *domain.InsufficientStockError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "p_furadeira_500", serr.ProductID)
	assert.Equal(t, 6, serr.Requested)
	assert.Equal(t, 5, serr.Available)

	despues := st.Snapshot()
	assert.Equal(t, 5, despues.FindProduct("p_furadeira_500").Qty)
	assert.Len(t, despues.Movements, len(antes.Movements))
	assert.Len(t, despues.Users, len(antes.Users), "el rechazo tampoco aprovisiona usuarios")
}

// Salida por el total exacto deja el stock en cero: la guarda es > , no >=.
func TestRegisterMovement_SaidaPorElTotalDejaCero(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	out, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_furadeira_500", Type: entity.MovementSaida, Qty: 5, Date: "2025-11-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Qty)
}

func TestRegisterMovement_ProductoNoExiste(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	_, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_fantasma", Type: entity.MovementEntrada, Qty: 1, Date: "2025-11-05",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_Validacion(t *testing.T) {
	uc, _ := newUC(t, "u_admin")

	casos := []struct {
		nombre string
		in     dto.RegisterMovementRequest
	}{
		{"qty cero", dto.RegisterMovementRequest{ProductID: "p_furadeira_500", Type: "entrada", Qty: 0}},
		{"qty negativa", dto.RegisterMovementRequest{ProductID: "p_furadeira_500", Type: "saida", Qty: -3}},
		{"tipo desconocido", dto.RegisterMovementRequest{ProductID: "p_furadeira_500", Type: "ajuste", Qty: 1}},
		{"fecha malformada", dto.RegisterMovementRequest{ProductID: "p_furadeira_500", Type: "entrada", Qty: 1, Date: "05/11/2025"}},
		{"sin producto", dto.RegisterMovementRequest{Type: "entrada", Qty: 1}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.RegisterMovement(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Un nombre desconocido auto-aprovisiona un usuario de auditoría: id nuevo,
// email sintetizado, password vacío, rol user.
func TestRegisterMovement_AutoAprovisionaUsuario(t *testing.T) {
	uc, st := newUC(t, "u_admin")

	_, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_martelo_16", Type: entity.MovementEntrada, Qty: 1, Date: "2025-11-06", UserName: "Carlos Pereira",
	})
	require.NoError(t, err)

	doc := st.Snapshot()
	user := doc.FindUserByName("Carlos Pereira")
	require.NotNil(t, user)
	assert.Equal(t, "carlospereira@local", user.Email)
	assert.Empty(t, user.Password)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, user.ID, doc.Movements[len(doc.Movements)-1].UserID)

	// Repetir el mismo nombre reutiliza el usuario, no crea otro.
	_, err = uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_martelo_16", Type: entity.MovementEntrada, Qty: 1, Date: "2025-11-07", UserName: "Carlos Pereira",
	})
	require.NoError(t, err)
	assert.Len(t, st.Snapshot().Users, 4)
}

// Sin nombre el movimiento se atribuye a la sesión activa; la fecha vacía se
// resuelve a hoy.
func TestRegisterMovement_DefaultsDeFechaYUsuario(t *testing.T) {
	uc, st := newUC(t, "u_jose")

	_, err := uc.RegisterMovement(dto.RegisterMovementRequest{
		ProductID: "p_martelo_16", Type: entity.MovementEntrada, Qty: 2,
	})
	require.NoError(t, err)

	mov := st.Snapshot().Movements[3]
	assert.Equal(t, hoy(), mov.Date)
	assert.Equal(t, "u_jose", mov.UserID)
}

// Invariante: tras cualquier secuencia de operaciones ningún producto queda
// con cantidad negativa.
func TestInvariante_QtyNuncaNegativo(t *testing.T) {
	uc, st := newUC(t, "u_admin")

	ops := []dto.RegisterMovementRequest{
		{ProductID: "p_furadeira_500", Type: entity.MovementSaida, Qty: 3, Date: "2025-11-01"},
		{ProductID: "p_furadeira_500", Type: entity.MovementSaida, Qty: 3, Date: "2025-11-02"}, // rechazada
		{ProductID: "p_furadeira_500", Type: entity.MovementEntrada, Qty: 1, Date: "2025-11-03"},
		{ProductID: "p_furadeira_500", Type: entity.MovementSaida, Qty: 3, Date: "2025-11-04"},
		{ProductID: "p_chave_fenda_3", Type: entity.MovementSaida, Qty: 30, Date: "2025-11-05"},
	}
	for _, op := range ops {
		_, _ = uc.RegisterMovement(op)
	}

	for _, p := range st.Snapshot().Products {
		assert.GreaterOrEqual(t, p.Qty, 0, "producto %s", p.ID)
	}
}
