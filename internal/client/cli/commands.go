package cli

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/wepub/internal/client/router"
)

func (a *App) commands() []command {
	return []command{
		{name: "help", usage: "help", help: "show available commands", run: a.Help},
		{name: "health", usage: "health", help: "check the server", run: a.Health},

		{name: "register", route: router.Register, usage: "register", help: "create an account and sign in", run: a.Register},
		{name: "login", route: router.Login, usage: "login", help: "sign in", run: a.Login},
		{name: "logout", usage: "logout", help: "sign out", run: a.Logout},
		{name: "whoami", route: router.Dashboard, usage: "whoami", help: "show the signed-in user", run: a.WhoAmI},

		{name: "styles", route: router.Styles, usage: "styles", help: "list writing styles", run: a.Styles},
		{name: "style", route: router.Styles, usage: "style <id>", help: "show a style", minArgs: 1, run: a.Style},
		{name: "style-add", route: router.Styles, usage: "style-add", help: "create a custom style", run: a.StyleAdd},
		{name: "style-rm", route: router.Styles, usage: "style-rm <id>", help: "delete a custom style", minArgs: 1, run: a.StyleRemove},

		{name: "articles", route: router.Articles, usage: "articles [page]", help: "list your articles", run: a.Articles},
		{name: "article", route: router.Articles, usage: "article <id>", help: "show an article", minArgs: 1, run: a.Article},
		{name: "generate", route: router.Articles, usage: "generate", help: "generate an article from a prompt", run: a.Generate},
		{name: "sync", route: router.Articles, usage: "sync <id>", help: "push an article to the WeChat drafts", minArgs: 1, run: a.Sync},
		{name: "article-rm", route: router.Articles, usage: "article-rm <id>", help: "delete an article", minArgs: 1, run: a.ArticleRemove},

		{name: "apikey", route: router.Settings, usage: "apikey [provider]", help: "show the LLM API key status", run: a.APIKey},
		{name: "apikey-set", route: router.Settings, usage: "apikey-set [provider]", help: "store or replace the LLM API key", run: a.APIKeySet},
		{name: "apikey-rm", route: router.Settings, usage: "apikey-rm [provider]", help: "delete the LLM API key", run: a.APIKeyRemove},
		{name: "wechat", route: router.Settings, usage: "wechat", help: "show the WeChat binding", run: a.Wechat},
		{name: "wechat-set", route: router.Settings, usage: "wechat-set", help: "bind or update the WeChat official account", run: a.WechatSet},
		{name: "wechat-rm", route: router.Settings, usage: "wechat-rm", help: "remove the WeChat binding", run: a.WechatRemove},
	}
}

func (a *App) lookup(name string) (command, bool) {
	for _, c := range a.commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Help lists the commands usable from the current session state.
func (a *App) Help(context.Context, []string) error {
	signedIn := a.session.IsAuthenticated()

	tbl := a.newTable("Command", "Description")
	cmds := a.commands()
	sort.SliceStable(cmds, func(i, j int) bool { return cmds[i].route < cmds[j].route })
	for _, c := range cmds {
		public := c.route == "" || router.Lookup(c.route).Public
		if signedIn || public {
			tbl.AddRow(c.usage, c.help)
		}
	}
	tbl.AddRow("exit | quit", "leave the program")
	return tbl.Render()
}
