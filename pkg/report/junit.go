// Package report reads recorded answers and writes check results in
// formats other tools consume.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/runner"
)

// SuiteName is the testsuite name used in JUnit reports
const SuiteName = "aoc"

// JUnit builds a JUnit XML document with one testcase per checked part
func JUnit(r *runner.CheckReport) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	suites := doc.CreateElement("testsuites")
	suite := suites.CreateElement("testsuite")
	suite.CreateAttr("name", SuiteName)
	suite.CreateAttr("tests", strconv.Itoa(len(r.Cases)))
	suite.CreateAttr("failures", strconv.Itoa(r.Failed()))
	suite.CreateAttr("errors", strconv.Itoa(r.Errors()))
	suite.CreateAttr("time", seconds(r.Elapsed))

	for _, c := range r.Cases {
		tc := suite.CreateElement("testcase")
		tc.CreateAttr("classname", c.Key)
		tc.CreateAttr("name", "part "+c.Part.String())
		tc.CreateAttr("time", seconds(c.Elapsed))

		switch c.Status {
		case runner.StatusFail:
			failure := tc.CreateElement("failure")
			failure.CreateAttr("message", c.Message)
			failure.SetText(fmt.Sprintf("expected: %s\nactual:   %s", c.Expected, c.Actual))
		case runner.StatusError:
			e := tc.CreateElement("error")
			e.CreateAttr("message", c.Message)
		}
	}

	doc.Indent(2)
	return doc
}

// WriteJUnit writes the JUnit XML form of a check report
func WriteJUnit(w io.Writer, r *runner.CheckReport) error {
	if _, err := JUnit(r).WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "failed to write JUnit report")
	}
	return nil
}

// WriteJUnitFile writes the report to path, creating parent directories
func WriteJUnitFile(path string, r *runner.CheckReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "cannot create directory for %s", path).
			WithDetail("path", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "cannot create %s", path).
			WithDetail("path", path)
	}

	if err := WriteJUnit(f, r); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "cannot close %s", path).
			WithDetail("path", path)
	}
	return nil
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
