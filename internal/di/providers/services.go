package providers

import (
	"github.com/samber/do/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/config"
	"github.com/askyourcrush/askyourcrush-server/internal/id"
	"github.com/askyourcrush/askyourcrush-server/internal/logger"
	"github.com/askyourcrush/askyourcrush-server/internal/notify"
	"github.com/askyourcrush/askyourcrush-server/internal/service"
)

// ProvideInviteService provides the invite lifecycle service.
func ProvideInviteService(i do.Injector) (*service.InviteService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	mailer := do.MustInvoke[*notify.Mailer](i)

	return service.NewInviteService(
		storeHandle.Store,
		mailer,
		id.NewSlugGenerator(cfg.Invite.SlugLength),
		cfg.Invite,
		log.Logger,
	), nil
}
