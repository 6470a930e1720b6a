// Package idgen genera identificadores ordenables por tiempo para las entidades.
package idgen

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// New devuelve "<prefix>-<ulid>" en minúsculas, ej: "cust-01j9x4...".
// El ULID codifica el instante en milisegundos seguido de 80 bits aleatorios;
// ulid.Make es seguro para uso concurrente y monótono dentro del mismo milisegundo.
func New(prefix string) string {
	id := strings.ToLower(ulid.Make().String())
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
