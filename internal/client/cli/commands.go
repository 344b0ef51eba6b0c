package cli

// commands is the command table of the REPL, grouped by page.
func (a *App) commands() []command {
	return []command{
		{name: "register", usage: "register", help: "create an account", route: "/register", run: a.Register},
		{name: "login", usage: "login", help: "sign in", route: "/login", run: a.Login},
		{name: "forgot", usage: "forgot", help: "reset a forgotten password with an emailed code", route: "/forgot-password", run: a.ForgotPassword},
		{name: "logout", usage: "logout", help: "sign out", run: a.Logout},

		{name: "jobs", usage: "jobs [keyword...]", help: "browse or search jobs", route: "/jobs", run: a.Jobs},
		{name: "filter", usage: "filter [location=..] [type=..] [min=..] [max=..]", help: "filter jobs", route: "/jobs", run: a.FilterJobs},
		{name: "job", usage: "job <id>", help: "show a job", route: "/jobs/{id}", run: a.ShowJob},

		{name: "dashboard", usage: "dashboard", help: "show your dashboard (run again to retry)", route: "/dashboard", run: a.Dashboard},
		{name: "notifications", usage: "notifications", help: "show notifications and mark them seen", route: "/dashboard", run: a.Notifications},
		{name: "profile", usage: "profile [set <field> <value>|password|photo <file>|photo clear|deactivate]", help: "view or edit your profile", route: "/profile", run: a.Profile},
		{name: "subscription", usage: "subscription [plan]", help: "list plans or subscribe to one", route: "/subscription", run: a.Subscription},
		{name: "payment", usage: "payment <tx_ref>", help: "check a returned payment", route: "/payment/success", run: a.VerifyPayment},

		{name: "apply", usage: "apply <jobId>", help: "apply for a job", route: "/jobseeker/applications", run: a.Apply},
		{name: "applications", usage: "applications [withdraw <id>]", help: "list or withdraw your applications", route: "/jobseeker/applications", run: a.MyApplications},
		{name: "cvs", usage: "cvs [upload <file> [name]|download <id>|default <id>|delete <id>]", help: "manage your CVs", route: "/jobseeker/cvs", run: a.Cvs},
		{name: "alerts", usage: "alerts [add|on <id>|off <id>|delete <id>]", help: "manage job alerts", route: "/jobseeker/alerts", run: a.Alerts},

		{name: "myjobs", usage: "myjobs [post|on <id>|off <id>|delete <id>]", help: "manage your job posts", route: "/employer/jobs", run: a.EmployerJobs},
		{name: "candidates", usage: "candidates [jobId|status <id> <status>|cv <id>]", help: "review applications to your jobs", route: "/employer/applications", run: a.Candidates},

		{name: "users", usage: "users [approve|activate|deactivate <id>]", help: "manage users", route: "/admin/users", run: a.AdminUsers},
		{name: "templates", usage: "templates [on|off|delete <id>]", help: "manage CV templates", route: "/admin/cv-templates", run: a.AdminTemplates},
		{name: "payments", usage: "payments [all|approve <id>|reject <id> <reason>]", help: "review payments", route: "/admin/payments", run: a.AdminPayments},

		{name: "pages", usage: "pages", help: "list the pages you can open", run: a.Pages},
		{name: "chat", usage: "chat [message...]", help: "talk to the assistant", run: a.Chat},
		{name: "theme", usage: "theme [system [light|dark]]", help: "toggle light/dark output, or follow the terminal scheme", run: a.ToggleTheme},
	}
}
