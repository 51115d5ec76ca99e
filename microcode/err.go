package microcode

import (
	"github.com/go8bit/microcode/internal/translate"
)

var f = translate.From
