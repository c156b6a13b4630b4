// Package runner drives the output phase: once a field is built and
// validated, the four artifacts are serialized and written out.
package runner

import (
	"os"
	"sync"

	conf "github.com/jorge-borbinha/ReadPhantom/config"
	"github.com/jorge-borbinha/ReadPhantom/penelope"
	"github.com/jorge-borbinha/ReadPhantom/phantom"
)

var log = conf.NamedLogger("runner")

// Outputs names the four files of a conversion run.
type Outputs struct {
	Vox          string
	ProjectionXY string
	ProjectionXZ string
	ProjectionYZ string
}

type writeJob struct {
	path      string
	serialize func() string
}

// WriteAll serializes and writes the .vox volume and the three
// projection dumps. The four jobs only read the field, write distinct
// paths and run concurrently; each file is assembled fully in memory
// and written with a single call. The first failure is returned.
func WriteAll(field *phantom.Field, grid phantom.Grid, outputs Outputs) error {
	jobs := []writeJob{
		{outputs.Vox, func() string {
			return penelope.SerializeVox(field, grid)
		}},
		{outputs.ProjectionXY, func() string {
			return penelope.SerializeProjection(field, grid, penelope.PlaneXY)
		}},
		{outputs.ProjectionXZ, func() string {
			return penelope.SerializeProjection(field, grid, penelope.PlaneXZ)
		}},
		{outputs.ProjectionYZ, func() string {
			return penelope.SerializeProjection(field, grid, penelope.PlaneYZ)
		}},
	}

	var wg sync.WaitGroup
	writeErrors := make(chan error, len(jobs))
	for _, job := range jobs {
		wg.Add(1)
		go func(job writeJob) {
			defer wg.Done()
			if err := writeFile(job.path, job.serialize()); err != nil {
				writeErrors <- err
				return
			}
			log.Infof("File %s created", job.path)
		}(job)
	}
	wg.Wait()
	close(writeErrors)

	return <-writeErrors
}

func writeFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
