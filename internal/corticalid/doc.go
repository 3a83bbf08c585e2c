//go:generate go run ./gen -in catalogue.toml -out catalogue_gen.go
package corticalid
