package config

import "github.com/spf13/viper"

// Messages is every piece of scripted text the manipulation engine can show.
// All of it is overridable from config so wording tweaks between study waves
// don't need a deploy; the literal defaults below are the registered texts.
type Messages struct {
	HarassmentBody string

	RemovalAINoRef  string
	RemovalAIRef    string
	RemovalComNoRef string
	RemovalComRef   string

	ObjectionAINoRef  string
	ObjectionAIRef    string
	ObjectionComNoRef string
	ObjectionComRef   string
}

const (
	defaultHarassmentBody = "LOL, did you even preview this before posting? " +
		"This is hands down the dumbest video on this site. Do everyone a favor and delete your account."

	defaultRemovalAINoRef = "This comment was removed by our bot for violating VidShare's rules."
	defaultRemovalAIRef   = "This comment was removed by our bot because it is inconsistent with our community's norms."

	defaultRemovalComNoRef = "This comment was removed by community moderators for violating VidShare's rules."
	defaultRemovalComRef   = "This comment was removed by community moderators because it is inconsistent with our community's norms."

	defaultObjectionAINoRef = "I'm a bot. This comment is hurtful and uncalled for."
	defaultObjectionAIRef   = "I'm a bot. Comments like this are inconsistent with our community's norms, and most people here find them unacceptable."

	defaultObjectionComNoRef = "Hey, that's really uncalled for. There's no reason to attack someone like this."
	defaultObjectionComRef   = "Hey, that's really uncalled for. Most of us in this community don't think comments like this are okay."
)

func loadMessages() Messages {
	viper.SetDefault("messages.harassment_body", defaultHarassmentBody)
	viper.SetDefault("messages.removal_ai_no_ref", defaultRemovalAINoRef)
	viper.SetDefault("messages.removal_ai_ref", defaultRemovalAIRef)
	viper.SetDefault("messages.removal_com_no_ref", defaultRemovalComNoRef)
	viper.SetDefault("messages.removal_com_ref", defaultRemovalComRef)
	viper.SetDefault("messages.objection_ai_no_ref", defaultObjectionAINoRef)
	viper.SetDefault("messages.objection_ai_ref", defaultObjectionAIRef)
	viper.SetDefault("messages.objection_com_no_ref", defaultObjectionComNoRef)
	viper.SetDefault("messages.objection_com_ref", defaultObjectionComRef)

	return Messages{
		HarassmentBody:    viper.GetString("messages.harassment_body"),
		RemovalAINoRef:    viper.GetString("messages.removal_ai_no_ref"),
		RemovalAIRef:      viper.GetString("messages.removal_ai_ref"),
		RemovalComNoRef:   viper.GetString("messages.removal_com_no_ref"),
		RemovalComRef:     viper.GetString("messages.removal_com_ref"),
		ObjectionAINoRef:  viper.GetString("messages.objection_ai_no_ref"),
		ObjectionAIRef:    viper.GetString("messages.objection_ai_ref"),
		ObjectionComNoRef: viper.GetString("messages.objection_com_no_ref"),
		ObjectionComRef:   viper.GetString("messages.objection_com_ref"),
	}
}

// DefaultMessages returns the built-in texts without touching viper state.
// Used by tests and anywhere a Config hasn't been loaded.
func DefaultMessages() Messages {
	return Messages{
		HarassmentBody:    defaultHarassmentBody,
		RemovalAINoRef:    defaultRemovalAINoRef,
		RemovalAIRef:      defaultRemovalAIRef,
		RemovalComNoRef:   defaultRemovalComNoRef,
		RemovalComRef:     defaultRemovalComRef,
		ObjectionAINoRef:  defaultObjectionAINoRef,
		ObjectionAIRef:    defaultObjectionAIRef,
		ObjectionComNoRef: defaultObjectionComNoRef,
		ObjectionComRef:   defaultObjectionComRef,
	}
}
