package common

import "github.com/queroir/api/internal/restaurant/domain"

// CuisineType is a suggested cuisine with its badge color.
type CuisineType struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SuggestedTag is a tag offered by the client's tag picker.
type SuggestedTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CuisineTypes are suggestions only; any non-empty cuisine is accepted.
var CuisineTypes = []CuisineType{
	{Name: "Brasileiro", Color: "#10b981"},
	{Name: "Italiano", Color: "#ef4444"},
	{Name: "Japonês", Color: "#f59e0b"},
	{Name: "Chinês", Color: "#dc2626"},
	{Name: "Mexicano", Color: "#ea580c"},
	{Name: "Francês", Color: "#7c3aed"},
	{Name: "Americano", Color: "#2563eb"},
	{Name: "Árabe", Color: "#059669"},
	{Name: "Indiano", Color: "#c2410c"},
	{Name: "Tailandês", Color: "#16a34a"},
	{Name: "Coreano", Color: "#be123c"},
	{Name: "Peruano", Color: "#0891b2"},
	{Name: "Argentino", Color: "#7c2d12"},
	{Name: "Português", Color: "#0d9488"},
	{Name: "Espanhol", Color: "#b91c1c"},
	{Name: "Grego", Color: "#1d4ed8"},
	{Name: "Vegetariano", Color: "#65a30d"},
	{Name: "Vegano", Color: "#166534"},
	{Name: "Fast Food", Color: "#dc2626"},
	{Name: "Pizzaria", Color: "#dc2626"},
	{Name: "Churrascaria", Color: "#7f1d1d"},
	{Name: "Frutos do Mar", Color: "#0891b2"},
	{Name: "Outro", Color: domain.DefaultTagColor},
}

var SuggestedTags = []SuggestedTag{
	{Name: domain.FavoriteTagName, Color: "#ef4444"},
	{Name: "Não voltaria", Color: "#6b7280"},
	{Name: "Lugar aconchegante", Color: "#f59e0b"},
	{Name: "Barato", Color: "#10b981"},
	{Name: "Caro", Color: "#8b5cf6"},
	{Name: "Atendimento bom", Color: "#06b6d4"},
	{Name: "Lugar bonito", Color: "#ec4899"},
	{Name: "Saboroso", Color: "#84cc16"},
}

var cuisineColors = func() map[string]string {
	colors := make(map[string]string, len(CuisineTypes))
	for _, c := range CuisineTypes {
		colors[c.Name] = c.Color
	}
	return colors
}()

// CuisineColor returns the badge color for a cuisine, gray when unknown.
func CuisineColor(cuisine string) string {
	if color, ok := cuisineColors[cuisine]; ok {
		return color
	}
	return domain.DefaultTagColor
}
