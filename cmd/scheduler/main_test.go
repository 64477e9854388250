package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCron_SkipsOverlappingRuns(t *testing.T) {
	// Подготовка: задание, которое держит прогон открытым до сигнала
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	runs := 0

	c := newCron(logger)
	id, err := c.AddFunc("@every 1h", func() {
		runs++
		started <- struct{}{}
		<-release
	})
	require.NoError(t, err)

	// WrappedJob несет обертку планировщика, сам таймер расписания здесь не участвует
	wrapped := c.Entry(id).WrappedJob

	// Действие: вторая активация приходит, пока первая еще выполняется
	done := make(chan struct{})
	go func() {
		wrapped.Run()
		close(done)
	}()
	<-started

	wrapped.Run()

	// Проверки: параллельная активация пропущена, тело выполнилось один раз
	assert.Equal(t, 1, runs)

	close(release)
	<-done

	// После завершения прогона следующая активация выполняется снова
	wrapped.Run()
	assert.Equal(t, 2, runs)
}
