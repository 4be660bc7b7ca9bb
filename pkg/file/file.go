// Package file selects the bytes of a file, or of a byte range of it, as one message.
package file

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/guilt/gsm/pkg/common"
	"github.com/guilt/gsm/pkg/log"
)

var logger = log.NewLogger()

// RangeSpec is a file path with an optional byte range. End is exclusive;
// End == -1 means the end of the file. When IsPercent is true, Start and End
// are basis points of the file size (10000 = 100%).
type RangeSpec struct {
	FilePath  string
	Start     int64
	End       int64
	IsPercent bool
}

func (f *RangeSpec) String() string {
	if f.IsPercent {
		return fmt.Sprintf("%s#%s%%-%s%%", f.FilePath,
			common.FormatPercent(float64(f.Start)/100), common.FormatPercent(float64(f.End)/100))
	}
	if f.End == -1 && f.Start == 0 {
		return f.FilePath
	}
	if f.End == -1 {
		return fmt.Sprintf("%s#%d-", f.FilePath, f.Start)
	}
	return fmt.Sprintf("%s#%d-%d", f.FilePath, f.Start, f.End)
}

// Parse populates f from "file", "file#count", "file#start-", "file#start-end",
// "file#pct%" or "file#pct%-pct%".
func (f *RangeSpec) Parse(s string) error {
	parts := strings.SplitN(s, "#", 2)
	f.FilePath = parts[0]
	f.Start = 0
	f.End = -1
	f.IsPercent = false

	if f.FilePath == "" {
		return errors.Errorf("empty file path: %s", s)
	}
	if len(parts) == 1 {
		return nil
	}

	rangeSpec := parts[1]
	logger.Debugf("Parsing range spec: %s", rangeSpec)

	if strings.Contains(rangeSpec, "%") {
		return f.parsePercent(rangeSpec)
	}

	if strings.Contains(rangeSpec, "-") {
		rangeParts := strings.Split(rangeSpec, "-")
		if len(rangeParts) != 2 {
			return errors.Errorf("invalid range format: %s", rangeSpec)
		}
		start, err := common.ParseInt64(rangeParts[0])
		if err != nil {
			return errors.Wrap(err, "invalid start range")
		}
		var end int64 = -1
		if rangeParts[1] != "" {
			end, err = common.ParseInt64(rangeParts[1])
			if err != nil {
				return errors.Wrap(err, "invalid end range")
			}
		}
		if end != -1 && end <= start {
			return errors.Errorf("invalid range: %d-%d", start, end)
		}
		f.Start = start
		f.End = end
	} else {
		count, err := common.ParseInt64(rangeSpec)
		if err != nil || count <= 0 {
			return errors.Errorf("invalid byte count: %s", rangeSpec)
		}
		f.End = count
	}

	logger.Debugf("Parsed byte range: %d-%d", f.Start, f.End)
	return nil
}

func (f *RangeSpec) parsePercent(rangeSpec string) error {
	startPart, endPart := "0%", rangeSpec
	if strings.Contains(rangeSpec, "-") {
		percentParts := strings.Split(rangeSpec, "-")
		if len(percentParts) != 2 {
			return errors.Errorf("invalid range format: %s", rangeSpec)
		}
		startPart, endPart = percentParts[0], percentParts[1]
	}
	start, err := common.ParsePercent(startPart)
	if err != nil {
		return errors.Wrap(err, "invalid start percent")
	}
	end, err := common.ParsePercent(endPart)
	if err != nil {
		return errors.Wrap(err, "invalid end percent")
	}
	if end <= start {
		return errors.Errorf("invalid percentage range: %s", rangeSpec)
	}
	f.Start = int64(math.Round(start * 100))
	f.End = int64(math.Round(end * 100))
	f.IsPercent = true
	logger.Debugf("Parsed percent range: %d-%d basis points", f.Start, f.End)
	return nil
}

// ToBytes resolves the range against a file of fileSize bytes.
func (f RangeSpec) ToBytes(fileSize int64) (start, end int64, err error) {
	start, end = f.Start, f.End
	switch {
	case f.IsPercent:
		start, end = fileSize*start/10000, fileSize*end/10000
	case end == -1:
		end = fileSize
	}
	if start < 0 || start > end || end > fileSize {
		return 0, 0, errors.Errorf("range %d-%d outside file of %d bytes", start, end, fileSize)
	}
	return start, end, nil
}

// ParseFilePath parses path into a RangeSpec.
func ParseFilePath(path string) (RangeSpec, error) {
	var f RangeSpec
	if err := f.Parse(path); err != nil {
		logger.Errorf("Invalid file path: %s, error=%s", path, err)
		return RangeSpec{}, err
	}
	return f, nil
}

// ReadRange reads the bytes selected by rs completely, reporting progress to
// a lifecycle obtained from progress once the range size is known.
// An empty file yields an empty message.
func ReadRange(rs RangeSpec, progress common.ProgressFunc) ([]byte, error) {
	file, err := os.Open(rs.FilePath)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	start, end, err := rs.ToBytes(info.Size())
	if err != nil {
		return nil, err
	}
	logger.Debug("reading range", "file", rs.FilePath, "start", start, "end", end)

	if _, err := file.Seek(start, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek to %d", start)
	}

	lc := progress("Hashing "+rs.String(), end-start)
	lc.OnStart(end - start)
	defer lc.OnEnd()
	reader := &common.LifecycleReader{Reader: io.LimitReader(file, end-start), Lifecycle: lc}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	if int64(len(data)) != end-start {
		return nil, errors.Errorf("short read: got %d of %d bytes", len(data), end-start)
	}
	return data, nil
}
