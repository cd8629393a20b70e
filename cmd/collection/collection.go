package collection

import (
	"fmt"
	"log"
	"time"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"

	"github.com/datafield/asset-library-backend/config"
	"github.com/datafield/asset-library-backend/internal/draft"
	"github.com/datafield/asset-library-backend/internal/entity"
	"github.com/datafield/asset-library-backend/internal/repository"
	collectionService "github.com/datafield/asset-library-backend/internal/service/collection"
	"github.com/datafield/asset-library-backend/internal/service/session"
	"github.com/datafield/asset-library-backend/internal/service/user"
)

// cliSink prints the controller's side effects instead of driving a UI.
type cliSink struct {
	navigated chan string
}

func (s *cliSink) Notify(message string) { fmt.Println("✅", message) }

func (s *cliSink) NavigateTo(path string) {
	fmt.Println("→", path)
	s.navigated <- path
}

func (s *cliSink) CloseModal() {}

func GetCollectionCmd(config *config.Config) *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage library collections",
	}

	var (
		owner        string
		name         string
		organization string
		country      string
		sector       string
		tags         []string
		description  string
		public       bool
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection through the draft workflow",
		Run: func(cmd *cobra.Command, args []string) {
			ownerID, err := uuid.FromString(owner)
			if err != nil {
				log.Fatal("❌ Invalid owner ID:", err)
			}

			db, err := repository.NewRepository(config.DB)
			if err != nil {
				log.Fatal("❌ Failed to connect to database:", err)
			}
			defer db.Close()

			userRepo := repository.NewUserRepository(db)
			userSrv := user.NewUserService(userRepo)
			collectionSrv := collectionService.NewCollectionService(
				repository.NewCollectionRepository(db), userRepo)

			sessionSrv := session.NewSessionService(userSrv, nil)
			sessionSrv.SetCurrentAccount(ownerID)

			dispatcher := collectionService.NewDispatcher(collectionSrv, ownerID)
			sink := &cliSink{navigated: make(chan string, 1)}

			controller := draft.NewController(sessionSrv, dispatcher, sink)
			controller.Init()
			defer controller.Close()

			controller.SetName(name)
			controller.SetOrganization(organization)
			if country != "" {
				controller.SetCountry(findOption(sessionSrv.AvailableCountries(), country))
			}
			if sector != "" {
				controller.SetSector(findOption(sessionSrv.AvailableSectors(), sector))
			}
			controller.SetTags(tags)
			controller.SetDescription(description)
			controller.SetPublic(public)

			if !controller.IsSubmittable() {
				for field, message := range controller.Errors() {
					fmt.Printf("❌ %s: %s\n", field, message)
				}
				log.Fatal("❌ Draft is not submittable")
			}

			failed := make(chan struct{}, 1)
			unsub := dispatcher.SubscribeFailed(func() { failed <- struct{}{} })
			defer unsub()

			controller.Submit()

			select {
			case <-sink.navigated:
			case <-failed:
				log.Fatal("❌ Create request failed")
			case <-time.After(30 * time.Second):
				log.Fatal("❌ Timed out waiting for create result")
			}
		},
	}

	createCmd.Flags().StringVar(&owner, "owner", "", "Owner user ID")
	createCmd.Flags().StringVar(&name, "name", "", "Collection name")
	createCmd.Flags().StringVar(&organization, "organization", "", "Organization")
	createCmd.Flags().StringVar(&country, "country", "", "Country value from the environment list")
	createCmd.Flags().StringVar(&sector, "sector", "", "Sector value from the environment list")
	createCmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags")
	createCmd.Flags().StringVar(&description, "description", "", "Description")
	createCmd.Flags().BoolVar(&public, "public", false, "Make the collection public")
	createCmd.MarkFlagRequired("owner")
	createCmd.MarkFlagRequired("name")

	collectionCmd.AddCommand(createCmd)

	return collectionCmd
}

func findOption(options []entity.OptionPair, value string) *entity.OptionPair {
	for i := range options {
		if options[i].Value == value {
			return &options[i]
		}
	}
	return &entity.OptionPair{Value: value, Label: value}
}
