package cli

import (
	"context"

	"github.com/dmitrijs2005/wepub/internal/client/models"
)

func providerArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return models.DefaultProvider
}

func (a *App) APIKey(ctx context.Context, args []string) error {
	provider := providerArg(args)
	k, err := a.clients.APIKeys.Get(ctx, provider)
	if err != nil {
		return err
	}
	if k == nil {
		a.printer.Info("No API key stored for %s. Add one with 'apikey-set'.", provider)
		return nil
	}

	status := "valid"
	if !k.IsValid {
		status = "invalid"
	}
	a.printer.Header("API key")
	a.printer.Field("Provider", k.Provider)
	a.printer.Field("Status", a.printer.StatusBadge(status))
	a.printer.Field("Last checked", k.LastValidatedAt)
	a.printer.Field("Updated", k.UpdatedAt)
	return nil
}

// APIKeySet stores a key, replacing the existing one for the provider.
func (a *App) APIKeySet(ctx context.Context, args []string) error {
	provider := providerArg(args)
	secret, err := getPassword(a.out, "API key for "+provider)
	if err != nil {
		return err
	}
	defer wipe(secret)
	if len(secret) == 0 {
		return errEmptyInput
	}

	existing, err := a.clients.APIKeys.Get(ctx, provider)
	if err != nil {
		return err
	}
	if existing != nil {
		_, err = a.clients.APIKeys.Update(ctx, provider, models.APIKeyUpdate{APIKey: string(secret)})
	} else {
		_, err = a.clients.APIKeys.Create(ctx, models.APIKeyCreate{Provider: provider, APIKey: string(secret)})
	}
	if err != nil {
		return err
	}
	a.printer.Success("API key for %s saved", provider)
	return nil
}

func (a *App) APIKeyRemove(ctx context.Context, args []string) error {
	provider := providerArg(args)
	if err := a.clients.APIKeys.Delete(ctx, provider); err != nil {
		return err
	}
	a.printer.Success("API key for %s deleted", provider)
	return nil
}

func (a *App) Wechat(ctx context.Context, _ []string) error {
	cfg, err := a.clients.Wechat.Get(ctx)
	if err != nil {
		return err
	}
	if cfg == nil {
		a.printer.Info("No WeChat official account bound. Bind one with 'wechat-set'.")
		return nil
	}

	a.printer.Header("WeChat")
	a.printer.Field("App ID", cfg.AppID)
	a.printer.Field("Synced", cfg.TotalSynced)
	a.printer.Field("Last sync", cfg.LastSyncAt)
	return nil
}

// WechatSet binds an official account, or updates the existing binding.
func (a *App) WechatSet(ctx context.Context, _ []string) error {
	appID, err := a.ask("App ID")
	if err != nil {
		return err
	}
	secret, err := getPassword(a.out, "App secret")
	if err != nil {
		return err
	}
	defer wipe(secret)
	if len(secret) == 0 {
		return errEmptyInput
	}

	existing, err := a.clients.Wechat.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		s := string(secret)
		_, err = a.clients.Wechat.Update(ctx, models.WechatConfigUpdate{AppID: &appID, AppSecret: &s})
	} else {
		_, err = a.clients.Wechat.Create(ctx, models.WechatConfigCreate{AppID: appID, AppSecret: string(secret)})
	}
	if err != nil {
		return err
	}
	a.printer.Success("WeChat account %s saved", appID)
	return nil
}

func (a *App) WechatRemove(ctx context.Context, _ []string) error {
	if err := a.clients.Wechat.Delete(ctx); err != nil {
		return err
	}
	a.printer.Success("WeChat binding removed")
	return nil
}
