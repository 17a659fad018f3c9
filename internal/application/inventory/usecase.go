package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almox-api/internal/application/dto"
	"github.com/jhoicas/almox-api/internal/domain"
	"github.com/jhoicas/almox-api/internal/domain/entity"
	"github.com/jhoicas/almox-api/internal/store"
	"github.com/jhoicas/almox-api/pkg/logger"
)

// Sessions fuente del usuario de la sesión activa (puerto hacia auth).
// CurrentUserID devuelve "" cuando no hay nadie autenticado.
type Sessions interface {
	CurrentUserID() string
}

// UseCase servicio de inventario: CRUD de productos y registro de
// movimientos. Toda mutación pasa por una única llamada a store.Update, así
// cada operación es un solo write-through atómico (la cascada de borrado
// nunca deja un snapshot intermedio persistido).
type UseCase struct {
	store    *store.Store
	sessions Sessions
	log      *logger.Logger
	now      func() time.Time
}

// New construye el servicio de inventario.
func New(st *store.Store, sessions Sessions, log *logger.Logger) *UseCase {
	return &UseCase{store: st, sessions: sessions, log: log, now: time.Now}
}

// today fecha actual en el formato de los movimientos.
func (uc *UseCase) today() string {
	return uc.now().Format(entity.DateLayout)
}

// actorID usuario de la sesión activa o el actor centinela system.
func (uc *UseCase) actorID() string {
	if id := uc.sessions.CurrentUserID(); id != "" {
		return id
	}
	return entity.SystemUserID
}

// CreateProduct valida y crea un producto con id nuevo. Si la cantidad
// inicial es positiva sintetiza un movimiento de entrada fechado hoy,
// atribuido al usuario de la sesión (o a system sin sesión).
func (uc *UseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product := entity.Product{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(in.Name),
		Brand:    in.Brand,
		Model:    in.Model,
		Qty:      in.Qty,
		Min:      in.Min,
		Features: append([]string{}, in.Features...),
	}
	err := uc.store.Update(func(doc *entity.Document) error {
		doc.Products = append(doc.Products, product)
		if product.Qty > 0 {
			doc.Movements = append(doc.Movements, entity.Movement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementEntrada,
				Qty:       product.Qty,
				Date:      uc.today(),
				UserID:    uc.actorID(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Int("qty", product.Qty).Msg("producto creado")
	return toProductResponse(&product), nil
}

// GetProduct devuelve un producto por id.
func (uc *UseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p := uc.store.Snapshot().FindProduct(id)
	if p == nil {
		return nil, &domain.NotFoundError{Entity: "producto", ID: id}
	}
	return toProductResponse(p), nil
}

// UpdateProduct aplica el parche sobre el producto existente conservando el
// id. Features, si viene, reemplaza la lista completa. No emite movimiento:
// los cambios de stock auditables pasan por RegisterMovement.
func (uc *UseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var updated entity.Product
	err := uc.store.Update(func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return &domain.NotFoundError{Entity: "producto", ID: id}
		}
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Brand != nil {
			p.Brand = *in.Brand
		}
		if in.Model != nil {
			p.Model = *in.Model
		}
		if in.Qty != nil {
			p.Qty = *in.Qty
		}
		if in.Min != nil {
			p.Min = *in.Min
		}
		if in.Features != nil {
			p.Features = append([]string{}, in.Features...)
		}
		updated = *p
		updated.Features = append([]string(nil), p.Features...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(&updated), nil
}

// DeleteProduct elimina el producto y, en cascada y dentro de la misma
// mutación, todos los movimientos que lo referencian. Irreversible.
func (uc *UseCase) DeleteProduct(id string) error {
	err := uc.store.Update(func(doc *entity.Document) error {
		idx := -1
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return &domain.NotFoundError{Entity: "producto", ID: id}
		}
		doc.Products = append(doc.Products[:idx], doc.Products[idx+1:]...)
		kept := make([]entity.Movement, 0, len(doc.Movements))
		for _, m := range doc.Movements {
			if m.ProductID != id {
				kept = append(kept, m)
			}
		}
		doc.Movements = kept
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado con su historial")
	return nil
}

// RegisterMovement registra un movimiento de stock. Las salidas se validan
// contra el stock disponible antes de mutar nada: un InsufficientStockError
// deja el producto sin cambios. El nombre de usuario se resuelve por
// coincidencia exacta o se auto-aprovisiona un usuario de auditoría.
// Devuelve el producto actualizado para que el caller detecte si cruzó el
// stock mínimo.
func (uc *UseCase) RegisterMovement(in dto.RegisterMovementRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	date := in.Date
	if date == "" {
		date = uc.today()
	}
	var updated entity.Product
	err := uc.store.Update(func(doc *entity.Document) error {
		p := doc.FindProduct(in.ProductID)
		if p == nil {
			return &domain.NotFoundError{Entity: "producto", ID: in.ProductID}
		}
		// Guarda de stock antes de cualquier mutación (incluido el
		// auto-aprovisionamiento): un rechazo no cambia estado.
		if in.Type == entity.MovementSaida && in.Qty > p.Qty {
			return &domain.InsufficientStockError{
				ProductID: p.ID,
				Requested: in.Qty,
				Available: p.Qty,
			}
		}
		userID := uc.resolveUser(doc, strings.TrimSpace(in.UserName))
		if in.Type == entity.MovementSaida {
			p.Qty -= in.Qty
		} else {
			p.Qty += in.Qty
		}
		doc.Movements = append(doc.Movements, entity.Movement{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Type:      in.Type,
			Qty:       in.Qty,
			Date:      date,
			UserID:    userID,
		})
		updated = *p
		updated.Features = append([]string(nil), p.Features...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("product_id", updated.ID).
		Str("type", in.Type).
		Int("qty", in.Qty).
		Msg("movimiento registrado")
	return toProductResponse(&updated), nil
}

// resolveUser resuelve el nombre al id de un usuario existente (coincidencia
// exacta) o aprovisiona uno nuevo de rol user con email sintetizado y
// password vacío. Nombre vacío se atribuye a la sesión activa o a system.
func (uc *UseCase) resolveUser(doc *entity.Document, name string) string {
	if name == "" {
		return uc.actorID()
	}
	if u := doc.FindUserByName(name); u != nil {
		return u.ID
	}
	user := entity.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@local",
		Password: "",
		Role:     entity.RoleUser,
	}
	doc.Users = append(doc.Users, user)
	uc.log.Info().Str("user_id", user.ID).Str("name", name).Msg("usuario auto-aprovisionado para auditoría")
	return user.ID
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		Model:    p.Model,
		Qty:      p.Qty,
		Min:      p.Min,
		Features: p.Features,
	}
}
