package dto

// Valores de paginación.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación para listados (?skip=&limit=).
type PageRequest struct {
	Skip  int `query:"skip" json:"skip"`
	Limit int `query:"limit" json:"limit"`
}

// DefaultPage aplica valores por defecto: skip negativo -> 0, limit <= 0 -> 10, máximo 100.
func (p *PageRequest) DefaultPage() {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Paginate recorta items según la página (normalizada) y devuelve los metadatos.
func Paginate[T any](items []T, page PageRequest) ([]T, PageResponse) {
	page.DefaultPage()
	meta := PageResponse{Total: len(items), Skip: page.Skip, Limit: page.Limit}
	if page.Skip >= len(items) {
		return []T{}, meta
	}
	end := page.Skip + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Skip:end], meta
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status      string `json:"status"`
	App         string `json:"app"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
}
