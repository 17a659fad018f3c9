// Comando seed: escribe el documento demo en la base local, pisando lo que
// haya. Útil para resetear el ambiente de desarrollo.
package main

import (
	"github.com/jhoicas/almox-api/internal/infrastructure/bolt"
	"github.com/jhoicas/almox-api/internal/store"
	"github.com/jhoicas/almox-api/pkg/config"
	"github.com/jhoicas/almox-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	persister, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia local")
	}
	defer persister.Close()

	doc := store.SeedDocument()
	if err := persister.Save(doc); err != nil {
		log.Fatal().Err(err).Msg("guardar documento seed")
	}
	if err := persister.ClearSession(); err != nil {
		log.Fatal().Err(err).Msg("limpiar marcador de sesión")
	}

	log.Info().
		Str("data", cfg.Store.Path).
		Int("users", len(doc.Users)).
		Int("products", len(doc.Products)).
		Int("movements", len(doc.Movements)).
		Msg("documento demo sembrado")
}
