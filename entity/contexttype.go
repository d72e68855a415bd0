package entity

import (
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/clock"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	RoadManager() IRoadManager
	SignalManager() ISignalManager
	RuntimeConfig() *config.RuntimeConfig
}
