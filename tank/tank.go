package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

type Payload struct {
	Data string `json:"data"`
}

func sendRequest() {
	values := map[string]string{"email": os.Getenv("TEST_USER_EMAIL"), "password": os.Getenv("TEST_USER_PASSWORD")}
	jsonData, err := json.Marshal(values)
	if err != nil {
		log.Fatalln(err)
	}

	requestURL := fmt.Sprintf("http://localhost:%d/v2/auth/login", 3000)
	res, err := http.Post(requestURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("error making http request: %s\n", err)
		os.Exit(1)
	}

	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatalln(err)
	}

	var payload Payload
	err = json.Unmarshal(b, &payload)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("client: login status code: %d\n", res.StatusCode)

	body, err := json.Marshal(map[string]interface{}{
		"deviceTimestamp": time.Now().UTC().Format(time.RFC3339),
		"location": map[string]interface{}{
			"latitude":          10.0,
			"longitude":         20.0,
			"accuracy":          5.0,
			"locationTimestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		log.Fatalln(err)
	}

	requestURL = fmt.Sprintf("http://localhost:%d/v2/presence", 3000)
	req, err := http.NewRequest("POST", requestURL, bytes.NewBuffer(body))
	if err != nil {
		fmt.Printf("error making http request: %s\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", payload.Data))

	client := &http.Client{}
	res, err = client.Do(req)
	if err != nil {
		fmt.Printf("error making http request: %s\n", err)
		os.Exit(1)
	}

	defer res.Body.Close()

	b, err = io.ReadAll(res.Body)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("client: log status code: %d, body: %s\n", res.StatusCode, string(b))

	requestURL = fmt.Sprintf("http://localhost:%d/v2/presence", 3000)
	req, err = http.NewRequest("GET", requestURL, nil)
	if err != nil {
		fmt.Printf("error making http request: %s\n", err)
		os.Exit(1)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", payload.Data))

	res, err = client.Do(req)
	if err != nil {
		fmt.Printf("error making http request: %s\n", err)
		os.Exit(1)
	}

	defer res.Body.Close()

	b, err = io.ReadAll(res.Body)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("client: index status code: %d, body: %s\n", res.StatusCode, string(b))
}

func main() {
	var wg sync.WaitGroup

	for i := 0; i < 1; i++ { // number of parallel goroutines
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := 0; i <= 100; i++ { // number of consecutive requests
				sendRequest()
			}
		}()
	}

	wg.Wait()
}
