package inventory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// FallbackCode código sentinel para tipos desconocidos. Los llamadores deben
// tratarlo como error, nunca como código válido.
const FallbackCode = "XXX-000000"

// dígitos al final del código: ENT-000042 -> 000042
var codeSuffixRe = regexp.MustCompile(`(\d+)$`)

// NextCode genera el siguiente código de transacción para un tipo de movimiento:
// filtra los códigos existentes con el prefijo del tipo, toma el máximo sufijo
// numérico y devuelve PREFIJO-<max+1> con relleno a seis dígitos.
// Función pura: la unicidad solo está garantizada si la lectura de códigos y la
// escritura del movimiento ocurren dentro de la misma transacción serializada.
func NextCode(t entity.MovementType, existing []string) string {
	if !t.Valid() {
		return FallbackCode
	}
	prefix := string(t) + "-"
	max := 0
	for _, code := range existing {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		match := codeSuffixRe.FindString(code)
		if match == "" {
			continue
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%06d", prefix, max+1)
}
