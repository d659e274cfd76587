package main

import (
	"flag"
	"log"
	"time"

	"github.com/mikesmitty/max31855"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func main() {
	bus := flag.String("bus", "", "Name of the bus")
	linearize := flag.Bool("linearize", true, "Apply NIST Type-K linearization")
	interval := flag.Duration("interval", 1*time.Second, "Sampling interval")
	flag.Parse()

	_, err := host.Init()
	if err != nil {
		log.Fatal(err)
	}

	sb, err := spireg.Open(*bus)
	if err != nil {
		log.Fatal(err)
	}

	dev, err := max31855.New(sb, &max31855.Opts{Linearize: *linearize})
	if err != nil {
		log.Fatal(err)
	}

	ticker := time.NewTicker(*interval)

	for {
		temp, err := dev.Temperature()
		if err != nil {
			log.Print(err)
			<-ticker.C
			continue
		}
		ref, err := dev.ReferenceTemperature()
		if err != nil {
			log.Print(err)
			<-ticker.C
			continue
		}
		if *linearize {
			lin, err := dev.LinearizedTemperature()
			if err != nil {
				log.Print(err)
			} else {
				log.Printf("Thermocouple: %.2f°C (linearized %.2f°C) internal: %.2f°C", temp, lin, ref)
			}
		} else {
			log.Printf("Thermocouple: %.2f°C internal: %.2f°C", temp, ref)
		}

		<-ticker.C
	}
}
