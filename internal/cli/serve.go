package cli

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/pizza-manager/internal/catalog"
	"github.com/franciscosanchezn/pizza-manager/internal/controllers"
	"github.com/franciscosanchezn/pizza-manager/internal/middleware"
)

// ServeCmd returns the command serving the console screens
func ServeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the store owner and pizza chef screens",
		Long: `Serve the console API consumed by the browser front-end.

The store owner screen lives under /store-owner, the pizza chef screen under
/pizza-chef and the API documentation under /swagger/index.html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")

			router, owner, chef, err := setupConsole(o)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", host, port),
				Handler: router,
			}
			return runServer(cmd.Context(), srv, func() {
				owner.Unmount()
				chef.Unmount()
			})
		},
	}

	cmd.Flags().String("host", o.conf.Host, "Interface the console listens on")
	cmd.Flags().Int("port", o.conf.Port, "Port the console listens on")

	return cmd
}

// setupConsole builds the gin router of the console and the two screens behind it
func setupConsole(o *options) (*gin.Engine, controllers.ToppingController, controllers.PizzaController, error) {
	gw, err := o.gateway()
	if err != nil {
		return nil, nil, nil, err
	}

	if o.conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(log))

	owner := controllers.NewToppingController(catalog.NewToppingCatalog(gw))
	chef := controllers.NewPizzaController(catalog.NewPizzaCatalog(gw, catalog.NewToppingCatalog(gw)))
	controllers.SetupRoutes(router, gw.BaseURL(), owner, chef)

	log.WithField("backend", gw.BaseURL()).Info("Console wired to pizza backend")
	return router, owner, chef, nil
}
