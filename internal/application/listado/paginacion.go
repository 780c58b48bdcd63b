package listado

// TotalPaginas número de páginas para una lista filtrada: ceil(total / porPagina).
// Cero elementos son cero páginas (no se generan botones).
func TotalPaginas(total, porPagina int) int {
	if porPagina <= 0 || total <= 0 {
		return 0
	}
	return (total + porPagina - 1) / porPagina
}

// Ajustar devuelve la página dentro de [1, max(1, totalPaginas)]. Tras filtrar,
// la página actual puede quedar fuera de rango; siempre se ajusta.
func Ajustar(pagina, totalPaginas int) int {
	if totalPaginas < 1 {
		totalPaginas = 1
	}
	if pagina < 1 {
		return 1
	}
	if pagina > totalPaginas {
		return totalPaginas
	}
	return pagina
}

// Pagina rebana la lista filtrada para la página 1-based indicada.
func Pagina[T any](filtrados []T, pagina, porPagina int) []T {
	if porPagina <= 0 || pagina < 1 {
		return nil
	}
	inicio := (pagina - 1) * porPagina
	if inicio >= len(filtrados) {
		return nil
	}
	fin := inicio + porPagina
	if fin > len(filtrados) {
		fin = len(filtrados)
	}
	return filtrados[inicio:fin]
}

// NumerosDePagina lista 1..totalPaginas para pintar los botones de página.
func NumerosDePagina(totalPaginas int) []int {
	if totalPaginas < 1 {
		return nil
	}
	nums := make([]int, totalPaginas)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}
