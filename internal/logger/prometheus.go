package logger

import (
	"github.com/maxaizer/jobsearch/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type prometheusHook struct{}

func (h *prometheusHook) Fire(entry *log.Entry) error {
	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		errorType = "unknown"
	}

	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *prometheusHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

func addPrometheusHook() {
	hook := &prometheusHook{}
	log.AddHook(hook)
	log.Debugf("counting %v log entries by %s into the in-process metrics registry, see the stats command",
		hook.Levels(), ErrorTypeField)
}
