package pluginperf

import (
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/viper"

	"github.com/ledraw1/pluginperf/internal/appconfig"
)

func runShowConfig() {
	fallback := appconfig.Config{
		SampleRate:  viper.GetFloat64("sampleRate"),
		Channels:    viper.GetInt("channels"),
		BufferSizes: viper.GetString("bufferSizes"),
		WarmupRuns:  viper.GetInt("warmupRuns"),
		TimedRuns:   viper.GetInt("timedRuns"),
		Precision:   viper.GetString("precision"),
		CSV:         viper.GetString("csv"),
		JSON:        viper.GetBool("json"),
		SystemInfo:  viper.GetBool("systemInfo"),
		Live:        viper.GetBool("live"),
		Debug:       viper.GetBool("debug"),
		LogFile:     viper.GetString("logFile"),
	}
	appconfig.ShowConfig(os.Stdout, viper.ConfigFileUsed(), GetConfig(), fallback)

	if DebugEnabled() {
		pp.Println(GetConfig())
	}
}
