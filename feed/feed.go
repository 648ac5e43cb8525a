package feed

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/temoto/robotstxt"
)

// Entries extracts all entry elements from a parsed feed document in
// document order.
func Entries(doc *goquery.Document) (entries []*Element) {
	doc.Find("entry").Each(func(i int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 {
			return
		}
		if el := NewElementFromNode(sel.Get(0)); el != nil {
			entries = append(entries, el)
		}
	})
	return entries
}

// Parse reads feed bytes and extracts the entries. The atom vocabulary
// is all lowercase, so the lenient html tokenizer keeps every name
// intact.
func Parse(feedBytes []byte) (entries []*Element, err error) {
	doc, errNewDoc := goquery.NewDocumentFromReader(bytes.NewBuffer(feedBytes))
	if errNewDoc != nil {
		return nil, errNewDoc
	}
	return Entries(doc), nil
}

// FetchEntries loads a feed from a url, with support for the file://
// scheme. Hosts keep the right to fence off their feeds, so their
// robots.txt is honored before fetching.
func FetchEntries(feedURL string, agent string) (entries []*Element, err error) {
	if strings.HasPrefix(feedURL, "file://") {
		filename := strings.TrimPrefix(feedURL, "file://")
		feedBytes, errRead := ioutil.ReadFile(filename)
		if errRead != nil {
			return nil, errRead
		}
		return Parse(feedBytes)
	}
	u, errParse := url.Parse(feedURL)
	if errParse != nil {
		return nil, errParse
	}
	robotsData, errRobots := getRobotsData(u.Scheme + "://" + u.Host)
	if errRobots == nil && !robotsData.TestAgent(u.Path, agent) {
		return nil, errors.New("robots.txt disallows " + u.Path + " for " + agent)
	}
	resp, errGet := http.Get(feedURL)
	if errGet != nil {
		return nil, errGet
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(fmt.Sprint("unexpected response code: ", resp.StatusCode, ", status:", resp.Status))
	}
	defer resp.Body.Close()
	feedBytes, errLoad := ioutil.ReadAll(resp.Body)
	if errLoad != nil {
		return nil, errLoad
	}
	return Parse(feedBytes)
}

func getRobotsData(baseURL string) (data *robotstxt.RobotsData, err error) {
	resp, errGet := http.Get(baseURL + "/robots.txt")
	if errGet != nil {
		return nil, errGet
	}
	data, errFromResponse := robotstxt.FromResponse(resp)
	if errFromResponse != nil {
		return nil, errFromResponse
	}
	return data, nil
}
