package common

import (
	"testing"

	"github.com/matryer/is"
)

type alphagramtestpair struct {
	word      string
	alphagram string
}

var alphagramTests = []alphagramtestpair{
	{"FIREFANG", "AEFFGINR"},
	{"QAJAQ", "AAJQQ"},
	{"EROTICA", "ACEIORT"},
	{"muumuus", "MMSUUUU"},
	{"ŽLUŤOUČKÝ", "KLOUUÝČŤŽ"},
}

func TestAlphagram(t *testing.T) {
	is := is.New(t)
	for _, pair := range alphagramTests {
		is.Equal(MakeAlphagram(pair.word), pair.alphagram)
	}
}

func TestAnagramsShareAlphagram(t *testing.T) {
	is := is.New(t)
	is.Equal(MakeAlphagram("WORD"), MakeAlphagram("DROW"))
	is.True(MakeAlphagram("WORD") != MakeAlphagram("WORE"))
}

func TestRuneLen(t *testing.T) {
	is := is.New(t)
	is.Equal(RuneLen("WORDS"), 5)
	is.Equal(RuneLen("ČEŠTINA"), 7)
}
