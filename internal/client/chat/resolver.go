// Package chat answers common questions locally and escalates everything
// else to the remote AI chat service.
package chat

import (
	"strings"
	"unicode"
)

const (
	GreetingReply = "Hello 👋 Welcome to EthioCareer! How can I help you today?"
	// UnavailableReply replaces the placeholder when the AI call fails.
	UnavailableReply = "AI service is currently unavailable."
	// Welcome is shown when the chat is opened.
	Welcome = "Welcome to EthioCareer Chat Bot 👋 Free to ask anything!"
)

type rule struct {
	keywords []string
	reply    string
}

var greetings = []string{
	"hi", "hello", "hey", "selam", "selam naw",
	"good morning", "good afternoon", "good evening",
}

var platformRules = []rule{
	{
		keywords: []string{
			"ethio career",
			"ethiocareer",
			"this website",
			"this platform",
			"what is this",
			"what is ethio career",
			"about ethio career",
			"system",
			"platform",
			"scope",
			"what do you do",
		},
		reply: "EthioCareer is an online job and freelancing platform, similar to Upwork. " +
			"It connects job seekers, freelancers, and employers in one place. " +
			"Employers can post jobs and projects, while job seekers can apply, showcase skills, and get hired.",
	},
}

var faqRules = []rule{
	{
		keywords: []string{"register", "signup", "create account"},
		reply: "To use EthioCareer, you need to create an account. " +
			"Click the Register button and complete the signup form.",
	},
	{
		keywords: []string{"developed", "created by"},
		reply:    "Yonas, Altaseb, Yohanis, Muluken are the developers of EthioCareer.",
	},
	{
		keywords: []string{"job", "jobs", "apply"},
		reply:    "Job seekers can browse available jobs and apply directly through EthioCareer.",
	},
	{
		keywords: []string{"freelancer", "freelancing", "project"},
		reply:    "Freelancers can find short-term and long-term projects posted by employers.",
	},
	{
		keywords: []string{"employer", "post job"},
		reply:    "Employers can post jobs or projects and review applications from qualified candidates.",
	},
	{
		keywords: []string{"contact", "support"},
		reply:    "For help and support, please visit the Contact section of EthioCareer.",
	},
}

// Resolve answers text from the local tables. ok is false when nothing
// matched and the caller should escalate.
//
// Tables are checked in order: greetings, platform, FAQ; within a table
// the first matching entry wins. Greetings must appear as whole words
// ("hi" does not match "this"); table keywords match as substrings.
func Resolve(text string) (reply string, ok bool) {
	msg := strings.ToLower(text)

	words := " " + strings.Join(strings.FieldsFunc(msg, notWordRune), " ") + " "
	for _, g := range greetings {
		if strings.Contains(words, " "+g+" ") {
			return GreetingReply, true
		}
	}

	for _, table := range [][]rule{platformRules, faqRules} {
		for _, r := range table {
			for _, kw := range r.keywords {
				if strings.Contains(msg, kw) {
					return r.reply, true
				}
			}
		}
	}
	return "", false
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
