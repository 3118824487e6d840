package core

import "image/color"

// Scheme bundles a named hex palette with the chrome colors that go with it.
// Palette entries are ordered from the flower center outward.
type Scheme struct {
	Name       string
	Palette    []string
	Background color.RGBA
	PanelText  color.RGBA
}

var schemes = map[string]Scheme{}

var schemeOrder []string

// RegisterScheme adds a color scheme under its name. Empty or palette-less
// schemes are ignored.
func RegisterScheme(s Scheme) {
	if s.Name == "" || len(s.Palette) == 0 {
		return
	}
	if _, ok := schemes[s.Name]; !ok {
		schemeOrder = append(schemeOrder, s.Name)
	}
	schemes[s.Name] = s
}

// SchemeByName looks up a registered scheme.
func SchemeByName(name string) (Scheme, bool) {
	s, ok := schemes[name]
	return s, ok
}

// SchemeNames returns the registered scheme names in registration order.
func SchemeNames() []string {
	out := make([]string, len(schemeOrder))
	copy(out, schemeOrder)
	return out
}

// NextScheme returns the scheme following name in registration order,
// wrapping around. With no registered schemes it returns the zero Scheme.
func NextScheme(name string) Scheme {
	if len(schemeOrder) == 0 {
		return Scheme{}
	}
	for i, n := range schemeOrder {
		if n == name {
			return schemes[schemeOrder[(i+1)%len(schemeOrder)]]
		}
	}
	return schemes[schemeOrder[0]]
}

func init() {
	RegisterScheme(Scheme{
		Name:       "dusk",
		Palette:    []string{"#2b1055", "#7597de", "#d98cb3", "#ffd6e0"},
		Background: color.RGBA{R: 14, G: 10, B: 26, A: 255},
		PanelText:  color.RGBA{R: 220, G: 214, B: 235, A: 255},
	})
	RegisterScheme(Scheme{
		Name:       "ember",
		Palette:    []string{"#3d0b0b", "#a62626", "#e8772e", "#ffd166"},
		Background: color.RGBA{R: 20, G: 8, B: 8, A: 255},
		PanelText:  color.RGBA{R: 236, G: 220, B: 208, A: 255},
	})
	RegisterScheme(Scheme{
		Name:       "moss",
		Palette:    []string{"#10281c", "#2f6b3c", "#8fbf5f", "#e9f5d0"},
		Background: color.RGBA{R: 8, G: 16, B: 12, A: 255},
		PanelText:  color.RGBA{R: 216, G: 230, B: 214, A: 255},
	})
}
