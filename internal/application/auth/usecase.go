package auth

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/almox-api/internal/application/dto"
	"github.com/jhoicas/almox-api/internal/domain"
	"github.com/jhoicas/almox-api/internal/domain/entity"
	"github.com/jhoicas/almox-api/internal/store"
	"github.com/jhoicas/almox-api/pkg/logger"
)

// SessionMarker puerto del slot durable de "último usuario logueado".
// Lo implementa el mismo adaptador de persistencia del documento.
type SessionMarker interface {
	LoadSession() (string, error)
	SaveSession(userID string) error
	ClearSession() error
}

// UseCase casos de uso de autenticación: login, resume y logout. La sesión
// activa es estado del use case (no una variable global del proceso), así los
// tests pueden levantar instancias independientes. Sin expiración, sin token,
// sin hash de password.
type UseCase struct {
	store  *store.Store
	marker SessionMarker
	log    *logger.Logger

	mu      sync.RWMutex
	current *entity.User
}

// New construye el caso de uso de auth.
func New(st *store.Store, marker SessionMarker, log *logger.Logger) *UseCase {
	return &UseCase{store: st, marker: marker, log: log}
}

// Login compara el email sin distinguir mayúsculas y el password de forma
// exacta. En éxito fija la sesión activa y persiste el marcador de última
// sesión; si el marcador no se puede escribir la sesión igual queda activa
// (solo se pierde el auto-login tras reinicio).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	doc := uc.store.Snapshot()
	var user *entity.User
	for i := range doc.Users {
		u := &doc.Users[i]
		if strings.EqualFold(u.Email, in.Email) && u.Password == in.Password {
			user = u
			break
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()
	if err := uc.marker.SaveSession(user.ID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("persistir marcador de sesión")
	}
	uc.log.Info().Str("user_id", user.ID).Msg("login")
	return toSessionResponse(user), nil
}

// Resume restaura la sesión desde el marcador persistido al arrancar.
// Devuelve nil si no hay marcador o si ya no resuelve a un usuario existente.
func (uc *UseCase) Resume() *dto.SessionResponse {
	userID, err := uc.marker.LoadSession()
	if err != nil {
		uc.log.Warn().Err(err).Msg("leer marcador de sesión")
		return nil
	}
	if userID == "" {
		return nil
	}
	user := uc.store.Snapshot().FindUser(userID)
	if user == nil {
		return nil
	}
	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()
	uc.log.Info().Str("user_id", user.ID).Msg("sesión restaurada")
	return toSessionResponse(user)
}

// Logout limpia la sesión activa y el marcador persistido.
func (uc *UseCase) Logout() error {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
	if err := uc.marker.ClearSession(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Current devuelve la sesión activa o nil.
func (uc *UseCase) Current() *dto.SessionResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return toSessionResponse(uc.current)
}

// CurrentUserID devuelve el id del usuario de la sesión activa, o "" si no
// hay sesión. Lo consume el servicio de inventario para atribuir movimientos.
func (uc *UseCase) CurrentUserID() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current == nil {
		return ""
	}
	return uc.current.ID
}

func toSessionResponse(u *entity.User) *dto.SessionResponse {
	if u == nil {
		return nil
	}
	return &dto.SessionResponse{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
