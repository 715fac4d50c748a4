package api

import (
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

func routeGroups(domain *Domain, runtime *Runtime) []routes.Group {
	return []routes.Group{
		domain.Strategies.Handler().Routes(),
		domain.Trends.Handler().Routes(),
		domain.Supply.Handler().Routes(),
		domain.Chat.Handler().Routes(),
		newOverviewHandler(domain, runtime.Logger).routes(),
	}
}
