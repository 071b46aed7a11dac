package log

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Level        string `json:"level,omitempty" yaml:"level,omitempty"`
	DisableColor bool   `json:"disable_color,omitempty" yaml:"disable_color,omitempty"`
	Timestamp    bool   `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

func init() {
	logrus.AddHook(new(TaggedHook))
}

// Setup applies options to the standard logger shared by every tagged entry.
func Setup(options Options) error {
	if options.Level != "" {
		level, err := logrus.ParseLevel(options.Level)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
	}
	formatter := &logrus.TextFormatter{
		ForceColors:      !options.DisableColor,
		DisableColors:    options.DisableColor,
		DisableTimestamp: !options.Timestamp,
		FullTimestamp:    options.Timestamp,
	}
	if callerPrettyfier != nil {
		logrus.SetReportCaller(true)
		formatter.CallerPrettyfier = callerPrettyfier
	}
	logrus.SetFormatter(formatter)
	return nil
}

func NewLogger(tag string) *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField("tag", tag)
}

type TaggedHook struct{}

func (h *TaggedHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *TaggedHook) Fire(entry *logrus.Entry) error {
	if tagObj, loaded := entry.Data["tag"]; loaded {
		tag, isString := tagObj.(string)
		if !isString {
			return nil
		}
		delete(entry.Data, "tag")
		entry.Message = strings.ReplaceAll(entry.Message, tag+": ", "")
		entry.Message = "[" + tag + "]: " + entry.Message
	}
	return nil
}
