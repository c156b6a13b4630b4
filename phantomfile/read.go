// Package phantomfile reads the external inputs of a conversion run:
// the raw organ-ID stream and the organ list table.
package phantomfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"

	conf "github.com/jorge-borbinha/ReadPhantom/config"
)

var log = conf.NamedLogger("phantomfile")

// ReadOrganField reads one organ tag per voxel from path. Binary input
// carries one unsigned byte per voxel; ASCII input is a
// whitespace-delimited stream of integers, with no constraint on how
// many values share a line. Files ending in ".gz" are decompressed
// transparently.
func ReadOrganField(path string, format string) ([]int32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open phantom file: %w", err)
	}
	defer file.Close()

	digest := xxhash.New()
	reader, err := wrapCompressed(path, io.TeeReader(file, digest))
	if err != nil {
		return nil, err
	}

	var organ []int32
	switch format {
	case conf.FormatBinary:
		organ, err = readBinary(reader)
	case conf.FormatASCII:
		organ, err = readASCII(reader)
	default:
		return nil, fmt.Errorf("unknown phantom format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read phantom file %s: %w", path, err)
	}

	log.Debugf("phantom stream digest: %016x", digest.Sum64())
	return organ, nil
}

func wrapCompressed(path string, reader io.Reader) (io.Reader, error) {
	if !strings.HasSuffix(path, ".gz") {
		return reader, nil
	}
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return nil, fmt.Errorf("unable to open gzip stream %s: %w", path, err)
	}
	return gzipReader, nil
}

func readBinary(reader io.Reader) ([]int32, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	organ := make([]int32, len(content))
	for i, tag := range content {
		organ[i] = int32(tag)
	}
	return organ, nil
}

func readASCII(reader io.Reader) ([]int32, error) {
	organ := []int32{}
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tag, err := strconv.ParseInt(scanner.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("organ tag %q is not an integer", scanner.Text())
		}
		organ = append(organ, int32(tag))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return organ, nil
}
