package handler

type productRequest struct {
	Name        string  `json:"name"     validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price"    validate:"gte=0"`
	Stock       int     `json:"stock"    validate:"gte=0"`
	Description string  `json:"description"`
}

// categoryResponse keeps the original wire keys the frontend renders.
type categoryResponse struct {
	Nombre         string  `json:"nombre"`
	TotalProductos int     `json:"totalProductos"`
	TotalStock     int     `json:"totalStock"`
	ValorTotal     float64 `json:"valorTotal"`
}
