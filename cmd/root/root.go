package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datafield/asset-library-backend/cmd/collection"
	"github.com/datafield/asset-library-backend/cmd/migrate"
	"github.com/datafield/asset-library-backend/config"
	"github.com/datafield/asset-library-backend/server"
)

var rootCmd = &cobra.Command{
	Use:   "asset-library-backend",
	Short: "Asset library application",
}

func GetRootCmd(config *config.Config) *cobra.Command {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DB.User,
		config.DB.Password,
		config.DB.Host,
		config.DB.Port,
		config.DB.DBName,
		config.DB.SSLMode)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(dbURL))
	rootCmd.AddCommand(collection.GetCollectionCmd(config))

	return rootCmd
}
