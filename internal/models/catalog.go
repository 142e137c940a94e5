package models

type Category struct {
	CategoriaID     int64  `json:"categoriaId"`
	NombreCategoria string `json:"nombreCategoria"`
	Descripcion     string `json:"descripcion,omitempty"`
	TotalProductos  int    `json:"totalProductos,omitempty"`
}

type Product struct {
	ProductoID     int64  `json:"productoId"`
	NombreProducto string `json:"nombreProducto"`
	TotalMenciones int    `json:"totalMenciones,omitempty"`
}
