// Package web embeds the HTML templates of the intranet screens.
package web

import (
	"embed"
	"errors"
	"html/template"
)

//go:embed templates/*.html
var archivos embed.FS

var funciones = template.FuncMap{
	"dict": dict,
}

// dict builds a map from alternating keys and values, to pass several
// values to a nested template.
func dict(pares ...any) (map[string]any, error) {
	if len(pares)%2 != 0 {
		return nil, errors.New("dict: número impar de argumentos")
	}
	m := make(map[string]any, len(pares)/2)
	for i := 0; i < len(pares); i += 2 {
		k, ok := pares[i].(string)
		if !ok {
			return nil, errors.New("dict: las claves deben ser texto")
		}
		m[k] = pares[i+1]
	}
	return m, nil
}

// Plantillas parses every template. Each page is addressed by its file
// name ("areas.html"); base.html only defines the shared "cabecera" and
// "pie" blocks.
func Plantillas() (*template.Template, error) {
	return template.New("").Funcs(funciones).ParseFS(archivos, "templates/*.html")
}
