// Package uciengine 把第三方 UCI 引擎进程包装成 analysis.Analyzer。
// FEN 方言与内建引擎一致，可以整段透传；着法编码的行号原点不同，
// 进出都要做一次换算（见 notation.go）。
package uciengine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/muli0525/xqpro/internal/analysis"
)

const handshakeTimeout = 5 * time.Second

var ErrNotRunning = errors.New("uciengine: engine process not running")

type Client struct {
	path string
	args []string

	cmd   *exec.Cmd
	stdin io.WriteCloser
	lines *bufio.Scanner
}

func New(path string, args ...string) *Client {
	return &Client{path: path, args: args}
}

// Start 拉起引擎进程并完成 uci/isready 握手
func (c *Client) Start() error {
	cmd := exec.Command(c.path, c.args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("uciengine: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("uciengine: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("uciengine: start %s: %w", c.path, err)
	}

	c.cmd = cmd
	c.stdin = stdin
	c.lines = bufio.NewScanner(stdout)

	if err := c.send("uci"); err != nil {
		return err
	}
	if err := c.waitFor("uciok", handshakeTimeout); err != nil {
		return err
	}
	if err := c.send("isready"); err != nil {
		return err
	}
	return c.waitFor("readyok", handshakeTimeout)
}

// Close 让引擎退出；进程没起来时直接返回
func (c *Client) Close() error {
	if c.cmd == nil {
		return nil
	}
	_ = c.send("quit")
	_ = c.stdin.Close()
	err := c.cmd.Wait()
	c.cmd = nil
	return err
}

// Analyze 实现 analysis.Analyzer：下发局面，收 info/bestmove。
func (c *Client) Analyze(fen string, limits analysis.Limits) (analysis.Result, error) {
	if c.cmd == nil {
		return analysis.Result{}, ErrNotRunning
	}
	start := time.Now()

	if err := c.send("position fen " + fen); err != nil {
		return analysis.Result{}, err
	}
	goCmd := "go depth " + strconv.Itoa(limits.Depth)
	if limits.MoveTime > 0 {
		goCmd = "go movetime " + strconv.Itoa(int(limits.MoveTime.Milliseconds()))
	}
	if err := c.send(goCmd); err != nil {
		return analysis.Result{}, err
	}

	var res analysis.Result
	for c.lines.Scan() {
		line := strings.TrimSpace(c.lines.Text())
		switch {
		case strings.HasPrefix(line, "info "):
			applyInfo(&res, line)
		case strings.HasPrefix(line, "bestmove"):
			engineMove := parseBestmove(line)
			if engineMove != "" {
				local, ok := moveCodeToLocal(engineMove)
				if !ok {
					return res, fmt.Errorf("uciengine: unparseable bestmove %q", engineMove)
				}
				res.BestMove = local
			}
			res.Elapsed = time.Since(start)
			return res, nil
		}
	}
	if err := c.lines.Err(); err != nil {
		return res, fmt.Errorf("uciengine: read: %w", err)
	}
	return res, fmt.Errorf("uciengine: engine exited without bestmove")
}

func (c *Client) send(line string) error {
	if c.stdin == nil {
		return ErrNotRunning
	}
	_, err := io.WriteString(c.stdin, line+"\n")
	if err != nil {
		return fmt.Errorf("uciengine: write %q: %w", line, err)
	}
	return nil
}

func (c *Client) waitFor(token string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for c.lines.Scan() {
		if strings.TrimSpace(c.lines.Text()) == token {
			return nil
		}
		if time.Now().After(deadline) {
			break
		}
	}
	return fmt.Errorf("uciengine: handshake: %q not received", token)
}

// applyInfo 从 "info depth .. score cp|mate .. nodes .." 行里更新结果
func applyInfo(res *analysis.Result, line string) {
	fields := strings.Fields(line)
	for i := 0; i < len(fields)-1; i++ {
		switch fields[i] {
		case "depth":
			if v, err := strconv.Atoi(fields[i+1]); err == nil {
				res.Depth = v
			}
		case "nodes":
			if v, err := strconv.ParseInt(fields[i+1], 10, 64); err == nil {
				res.Nodes = v
			}
		case "score":
			if i+2 >= len(fields) {
				continue
			}
			v, err := strconv.Atoi(fields[i+2])
			if err != nil {
				continue
			}
			switch fields[i+1] {
			case "cp":
				res.Score = v
			case "mate":
				// 折算成一个大分，保留正负
				if v >= 0 {
					res.Score = 100_000 - v
				} else {
					res.Score = -100_000 - v
				}
			}
		}
	}
}

// parseBestmove 取 "bestmove h2e2 ponder ..." 里的着法；"(none)" 当无招
func parseBestmove(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] == "(none)" {
		return ""
	}
	return fields[1]
}
