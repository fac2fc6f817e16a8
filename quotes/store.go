// Package quotes 加载按时间索引的引文库。
//
// 数据文件是制表符分隔的文本，每行六列：
//
//	时间(HH:MM)  引文前段  高亮段  引文后段  书名  作者
//
// 同一时间出现多条记录时保留文件中的第一条。
package quotes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ByLCY/chronotype/layout"
)

// Record 是引文库中的一行。
type Record struct {
	Time   string
	Part1  string
	Part2  string
	Part3  string
	Title  string
	Author string
}

// Quote 把记录转换为布局输入。
func (r Record) Quote() layout.Quote {
	return layout.Quote{
		Part1: r.Part1,
		Part2: r.Part2,
		Part3: r.Part3,
		Attribution: layout.Attribution{
			Title:  r.Title,
			Author: r.Author,
		},
	}
}

// Store 按时间键索引的引文集合。
type Store struct {
	byTime map[string]Record
}

// Load 从文件加载引文库。
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开引文库 %s 失败: %w", path, err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("读取引文库 %s 失败: %w", path, err)
	}
	return s, nil
}

// Read 从 r 读取制表符分隔的引文数据。列数不足六列的行被跳过。
func Read(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	s := &Store{byTime: make(map[string]Record)}
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 6 {
			continue
		}
		rec := Record{
			Time:   strings.TrimSpace(fields[0]),
			Part1:  strings.TrimSpace(fields[1]),
			Part2:  strings.TrimSpace(fields[2]),
			Part3:  strings.TrimSpace(fields[3]),
			Title:  strings.TrimSpace(fields[4]),
			Author: strings.TrimSpace(fields[5]),
		}
		if rec.Time == "" {
			continue
		}
		if _, dup := s.byTime[rec.Time]; !dup {
			s.byTime[rec.Time] = rec
		}
	}
	return s, nil
}

// Len 返回去重后的记录数。
func (s *Store) Len() int { return len(s.byTime) }

// Lookup 按时间键查找记录。键与数据文件对前导零的写法可能不一致
// （"08:58" 与 "8:58"），两种形式都会尝试。
func (s *Store) Lookup(key string) (Record, bool) {
	for _, k := range keyAlternates(key) {
		if rec, ok := s.byTime[k]; ok {
			return rec, true
		}
	}
	return Record{}, false
}

// keyAlternates 返回键本身及其前导零的另一种写法。
func keyAlternates(key string) []string {
	alts := []string{key}
	switch {
	case strings.HasPrefix(key, "0") && len(key) == 5:
		alts = append(alts, key[1:])
	case len(key) == 4 && strings.Index(key, ":") == 1:
		alts = append(alts, "0"+key)
	}
	return alts
}
