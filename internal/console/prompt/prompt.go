// Package prompt реализует построчный ввод-вывод консоли:
// приглашение, чтение строки, одного слова или целого числа.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt читает ответы из in и печатает приглашения в out.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// New создает новый Prompt.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Write пишет в выходной поток, Prompt реализует io.Writer.
func (p *Prompt) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

// Println печатает строку.
func (p *Prompt) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Printf печатает форматированную строку.
func (p *Prompt) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Line печатает label и возвращает следующую строку целиком, без перевода строки.
// Пустая строка допустима. io.EOF возвращается, только если ввод закончился
// до первого символа.
func (p *Prompt) Line(label string) (string, error) {
	p.Printf("%s", label)
	return p.readLine()
}

// Token печатает label и возвращает первое слово первой непустой строки.
// Остаток строки отбрасывается.
func (p *Prompt) Token(label string) (string, error) {
	p.Printf("%s", label)
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

// Int печатает label и читает слово как целое число.
// ok равен false, если слово не является числом.
func (p *Prompt) Int(label string) (n int, ok bool, err error) {
	token, err := p.Token(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(token)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (p *Prompt) readLine() (string, error) {
	const op = "prompt.readLine"
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
