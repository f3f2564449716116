package io

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelRead  = errors.New(f("channel read"))
	ErrChannelWrite = errors.New(f("channel write"))
)
