package telegram

import (
	tg "github.com/amarnathcjd/gogram/telegram"

	cfg "filmgram/config"
	"filmgram/tmdb"
)

// Bot wraps the MTProto client with the TMDB client and the injected
// provider catalog cache.
type Bot struct {
	client    *tg.Client
	tmdb      *tmdb.Client
	providers *tmdb.ProviderCache
}

func InitBot(c *cfg.Config, client *tmdb.Client, providers *tmdb.ProviderCache) (*Bot, error) {
	tgClient, err := tg.NewClient(tg.ClientConfig{
		AppID:    int32(c.AppID),
		AppHash:  c.AppHash,
		Cache:    tg.NewCache("filmgram.db"),
		LogLevel: tg.LogInfo,
	})
	if err != nil {
		return nil, err
	}

	tgClient.Conn()
	if err := tgClient.LoginBot(c.TelegramToken); err != nil {
		return nil, err
	}

	b := &Bot{
		client:    tgClient,
		tmdb:      client,
		providers: providers,
	}

	tgClient.On(tg.OnInlineQuery, b.HandleInlineQuery)

	return b, nil
}
