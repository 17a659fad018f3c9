package entity

import "time"

// Document es el estado completo de la aplicación: un único documento JSON
// con los usuarios, productos y movimientos. Las etiquetas camelCase
// corresponden al formato persistido.
type Document struct {
	DBName    string     `json:"dbName"`
	CreatedAt time.Time  `json:"createdAt"`
	Users     []User     `json:"users"`
	Products  []Product  `json:"products"`
	Movements []Movement `json:"movements"`
}

// Clone devuelve una copia profunda del documento. Los snapshots del store
// se construyen con esta función para que el llamador nunca comparta
// memoria con el estado interno.
func (d *Document) Clone() *Document {
	out := &Document{
		DBName:    d.DBName,
		CreatedAt: d.CreatedAt,
		Users:     make([]User, len(d.Users)),
		Products:  make([]Product, len(d.Products)),
		Movements: make([]Movement, len(d.Movements)),
	}
	copy(out.Users, d.Users)
	copy(out.Movements, d.Movements)
	for i, p := range d.Products {
		out.Products[i] = p
		if p.Features != nil {
			out.Products[i].Features = make([]string, len(p.Features))
			copy(out.Products[i].Features, p.Features)
		}
	}
	return out
}

// FindProduct devuelve un puntero al producto dentro del slice, o nil si no
// existe. Solo debe usarse dentro de una mutación del store: los punteros
// apuntan al estado interno.
func (d *Document) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindUser busca un usuario por id.
func (d *Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByName busca un usuario por nombre exacto.
func (d *Document) FindUserByName(name string) *User {
	for i := range d.Users {
		if d.Users[i].Name == name {
			return &d.Users[i]
		}
	}
	return nil
}
