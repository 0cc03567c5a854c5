package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const AvatarSize = 64

type Server struct {
	Port      string
	GinMode   string
	FeOrigins []string
	AdminKey  string
}

type Mysql struct {
	User     string
	Password string
	Host     string
	Database string
}

type Redis struct {
	Addr      string
	Password  string
	ScriptTTL time.Duration
}

// Study holds the experiment's reference actors. The AI username must match
// a seeded actor; the objection role tags the pool of scripted bystanders an
// objection can be attributed to.
type Study struct {
	AIUsername       string
	HarasserUsername string
	ObjectionRole    string
}

type Config struct {
	Server   Server
	Mysql    Mysql
	Redis    Redis
	Study    Study
	Messages Messages
}

// Load reads config.yml if one is present and fills the rest from env vars
// and literal defaults. A missing config file is not an error: every message
// text has a built-in fallback so a bare deployment still serves the study.
func Load() *Config {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Info("no config file found, using defaults and env")
		} else {
			logrus.WithError(err).Error("config file unreadable, using defaults and env")
		}
	} else {
		logrus.WithField("file", viper.ConfigFileUsed()).Info("config file loaded")
	}

	return &Config{
		Server: Server{
			Port:      viper.GetString("server.port"),
			GinMode:   viper.GetString("server.gin_mode"),
			FeOrigins: viper.GetStringSlice("server.fe_origins"),
			AdminKey:  viper.GetString("server.admin_key"),
		},
		Mysql: Mysql{
			User:     viper.GetString("mysql.user"),
			Password: viper.GetString("mysql.password"),
			Host:     viper.GetString("mysql.host"),
			Database: viper.GetString("mysql.database"),
		},
		Redis: Redis{
			Addr:      viper.GetString("redis.addr"),
			Password:  viper.GetString("redis.password"),
			ScriptTTL: viper.GetDuration("redis.script_ttl"),
		},
		Study: Study{
			AIUsername:       viper.GetString("study.ai_username"),
			HarasserUsername: viper.GetString("study.harasser_username"),
			ObjectionRole:    viper.GetString("study.objection_role"),
		},
		Messages: loadMessages(),
	}
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.gin_mode", "release")
	viper.SetDefault("server.fe_origins", []string{"http://localhost:3000"})
	viper.SetDefault("mysql.user", "root")
	viper.SetDefault("mysql.host", "127.0.0.1:3306")
	viper.SetDefault("mysql.database", "vidshare")
	viper.SetDefault("redis.script_ttl", 10*time.Minute)
	viper.SetDefault("study.ai_username", "vidshare_assistant")
	viper.SetDefault("study.harasser_username", "truthteller_99")
	viper.SetDefault("study.objection_role", "objector")
}
