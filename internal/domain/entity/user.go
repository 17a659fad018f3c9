package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// SystemUserID actor centinela para movimientos generados sin sesión activa.
const SystemUserID = "system"

// User representa un usuario del almacén. El password se guarda en texto
// plano: la aplicación es una demo local, no hay requerimiento de hash.
// Se crea en el seed o de forma implícita al registrar un movimiento con un
// nombre desconocido (auto-aprovisionamiento para auditoría).
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"` // único, insensible a mayúsculas
	Password string `json:"password"`
	Role     string `json:"role"`
}
