package dto

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/jhoicas/almox-api/internal/domain"
)

// notBlank rechaza cadenas compuestas solo de espacios (Required no lo cubre).
// La regla recibe el valor crudo del campo: para campos *string hay que
// indireccionar, y un puntero nil (campo ausente en un parche) se deja pasar.
var notBlank = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("no puede estar en blanco")
	}
	return nil
})

// WrapValidation convierte los errores de jellydator/validation en el
// ValidationError del dominio. Con varios campos inválidos se reporta el
// primero en orden alfabético para que el resultado sea determinista.
func WrapValidation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return &domain.ValidationError{Field: fields[0], Reason: verrs[fields[0]].Error()}
	}
	return &domain.ValidationError{Reason: err.Error()}
}
