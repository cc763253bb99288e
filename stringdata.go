// StringData parsing ([MS-SHLLINK] 2.4). Up to five strings follow LinkInfo,
// each present only when its header flag is set. Every string is a 16-bit
// character count followed by that many codepage bytes or UTF-16LE code
// units; there is no terminator.

package lnk

import (
	"reflect"

	"github.com/dsoprea/go-logging"
)

type stringDataSection struct {
	in       *StreamReader
	out      *Stream
	warnings []string

	isUnicode bool
}

func (sds *stringDataSection) readString() (value string, isUtf8 bool) {
	charCount := int(sds.in.ReadU16())

	if sds.isUnicode == true {
		u := sds.in.ReadExactUnicode(charCount * 2)
		return UnicodeToString(u), true
	}

	a := sds.in.ReadExactAnsi(charCount)

	return string(a), false
}

func (sds *stringDataSection) putString(name string) {
	value, isUtf8 := sds.readString()
	sds.out.Put(NewStringValue(name, value, isUtf8))
}

func parseStringData(in *StreamReader, header ShellLinkHeader) (sds *stringDataSection, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			var ok bool
			if err, ok = errRaw.(error); ok == true {
				err = log.Wrap(err)
			} else {
				err = log.Errorf("Error not an error: [%s] [%v]", reflect.TypeOf(err).Name(), err)
			}
		}
	}()

	sds = &stringDataSection{
		in:        in,
		out:       NewStream(),
		isUnicode: header.IsUnicode(),
	}

	if header.HasName() == true {
		sds.putString("Name")
	}

	if header.HasRelativePath() == true {
		sds.putString("RelativePath")
	}

	if header.HasWorkingDir() == true {
		sds.putString("WorkingDir")
	}

	if header.HasArguments() == true {
		sds.putString("CommandLine")
	}

	if header.HasIconLocation() == true {
		sds.putString("IconLocation")
	}

	return sds, nil
}
