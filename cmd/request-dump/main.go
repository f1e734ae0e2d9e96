// Package main provides the request-dump debugging tool.
//
// request-dump seeds a translator from a canned device, applies the legacy
// settings given on the command line and dumps the resulting sparse request
// settings, so you can see exactly which options a given combination
// overrides and which ones the template still owns.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"camera2-shim/camera2"
	"camera2-shim/legacy"
	"camera2-shim/logx"
	"camera2-shim/translate"
)

var (
	templateName = flag.String("template", "preview", "framework template to seed from: preview, still, record, video-snapshot, zsl, manual")
	flashName    = flag.String("flash", "", "legacy flash mode: auto, off, on, torch, red-eye")
	focusName    = flag.String("focus", "", "legacy focus mode: auto, continuous-picture, continuous-video, edof, fixed, infinity, macro")
	sceneName    = flag.String("scene", "", "legacy scene mode: auto, action, hdr, night, ...")
	wbName       = flag.String("wb", "", "legacy white balance: auto, daylight, shade, ...")
	quality      = flag.Int("quality", 0, "JPEG quality, 1-100")
	exposure     = flag.Int("exposure", 0, "exposure compensation index")
	fpsRange     = flag.String("fps", "", "preview fps range as min:max")
	stab         = flag.Bool("stab", false, "enable software video stabilization")
	meterAreas   = flag.String("meter", "", "metering areas as left,top,right,bottom,weight;...")
	afAreas      = flag.String("af-area", "", "autofocus areas as left,top,right,bottom,weight;...")
	thumb        = flag.String("thumb", "", "EXIF thumbnail size as WxH, 0x0 disables it")
	logFile      = flag.String("log-file", "", "append warnings to this rotated file instead of stderr")
)

func main() {
	flag.Parse()

	if *logFile != "" {
		logx.Set(logx.NewRotating(*logFile))
	}

	template, err := parseTemplate(*templateName)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	activeArray := camera2.Rect{Left: 0, Top: 0, Right: 4032, Bottom: 3024}
	tr, err := translate.New(demoDevice(), template, activeArray,
		legacy.Size{Width: 1920, Height: 1080}, legacy.Size{Width: 4032, Height: 3024})
	if err != nil {
		fmt.Println("build translator:", err)
		os.Exit(1)
	}

	// Only flags actually given on the command line touch the translator,
	// everything else stays at the template default.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		flagErr = applyFlag(tr, f.Name)
	})
	if flagErr != nil {
		fmt.Println(flagErr)
		os.Exit(1)
	}

	rs := tr.RequestSettings()
	fmt.Printf("%v translation: %d option(s) overridden\n", template, rs.Len())
	for _, key := range rs.Keys() {
		value, _ := rs.Get(key)
		fmt.Printf("%s = %s", key, spew.Sdump(value))
	}
}

func applyFlag(tr *translate.Translator, name string) error {
	switch name {
	case "flash":
		mode, ok := legacy.ParseFlashMode(*flashName)
		if !ok {
			return fmt.Errorf("unknown flash mode %q", *flashName)
		}
		tr.SetFlashMode(mode)
	case "focus":
		mode, ok := legacy.ParseFocusMode(*focusName)
		if !ok {
			return fmt.Errorf("unknown focus mode %q", *focusName)
		}
		tr.SetFocusMode(mode)
	case "scene":
		mode, ok := legacy.ParseSceneMode(*sceneName)
		if !ok {
			return fmt.Errorf("unknown scene mode %q", *sceneName)
		}
		tr.SetSceneMode(mode)
	case "wb":
		wb, ok := legacy.ParseWhiteBalance(*wbName)
		if !ok {
			return fmt.Errorf("unknown white balance %q", *wbName)
		}
		tr.SetWhiteBalance(wb)
	case "quality":
		tr.SetJPEGQuality(*quality)
	case "exposure":
		tr.SetExposureCompensation(*exposure)
	case "fps":
		min, max, err := parseFpsRange(*fpsRange)
		if err != nil {
			return err
		}
		tr.SetPreviewFpsRange(min, max)
	case "stab":
		tr.SetVideoStabilization(*stab)
	case "meter":
		areas, err := parseAreas(*meterAreas)
		if err != nil {
			return err
		}
		tr.SetMeteringAreas(areas)
	case "af-area":
		areas, err := parseAreas(*afAreas)
		if err != nil {
			return err
		}
		tr.SetFocusAreas(areas)
	case "thumb":
		size, err := parseSize(*thumb)
		if err != nil {
			return err
		}
		tr.SetExifThumbnailSize(size)
	}
	return nil
}

var templateNames = map[string]camera2.Template{
	"preview":        camera2.TemplatePreview,
	"still":          camera2.TemplateStillCapture,
	"record":         camera2.TemplateRecord,
	"video-snapshot": camera2.TemplateVideoSnapshot,
	"zsl":            camera2.TemplateZeroShutterLag,
	"manual":         camera2.TemplateManual,
}

func parseTemplate(name string) (camera2.Template, error) {
	template, ok := templateNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown template %q", name)
	}
	return template, nil
}

func parseFpsRange(s string) (min, max int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("fps range %q is not of the form min:max", s)
	}
	if min, err = strconv.Atoi(lo); err == nil {
		max, err = strconv.Atoi(hi)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("fps range %q: %w", s, err)
	}
	return min, max, nil
}

func parseAreas(s string) ([]legacy.Area, error) {
	var areas []legacy.Area
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 5 {
			return nil, fmt.Errorf("area %q needs left,top,right,bottom,weight", part)
		}

		nums := make([]int, len(fields))
		for i, field := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("area %q: %w", part, err)
			}
			nums[i] = n
		}

		area := legacy.Area{
			Rect:   legacy.Rect{Left: nums[0], Top: nums[1], Right: nums[2], Bottom: nums[3]},
			Weight: nums[4],
		}
		if !area.Valid() {
			return nil, fmt.Errorf("area %q is outside the [-1000, 1000] space", part)
		}
		areas = append(areas, area)
	}
	return areas, nil
}

func parseSize(s string) (legacy.Size, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return legacy.Size{}, fmt.Errorf("size %q is not of the form WxH", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return legacy.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return legacy.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	return legacy.Size{Width: width, Height: height}, nil
}

// demoDevice fabricates template defaults close to what a real back camera
// reports, so the tool is usable without any hardware attached.
func demoDevice() camera2.TemplateTable {
	preview := camera2.NewRequestSet()
	preview.Set(camera2.KeyControlAEMode, camera2.AEModeOnAutoFlash)
	preview.Set(camera2.KeyControlAFMode, camera2.AFModeContinuousPicture)
	preview.Set(camera2.KeyControlAWBMode, camera2.AWBModeAuto)
	preview.Set(camera2.KeyControlSceneMode, camera2.SceneModeDisabled)
	preview.Set(camera2.KeyControlAETargetFPSRange, camera2.Range{Lower: 15, Upper: 30})
	preview.Set(camera2.KeyControlAEExposureCompensation, int32(0))
	preview.Set(camera2.KeyControlAELock, false)
	preview.Set(camera2.KeyControlAWBLock, false)
	preview.Set(camera2.KeyControlVideoStabilizationMode, camera2.VideoStabilizationOff)
	preview.Set(camera2.KeyJPEGQuality, uint8(85))
	preview.Set(camera2.KeyJPEGThumbnailSize, camera2.Size{Width: 320, Height: 240})

	still := preview.Clone()
	still.Set(camera2.KeyControlAFMode, camera2.AFModeAuto)
	still.Set(camera2.KeyJPEGQuality, uint8(95))

	record := preview.Clone()
	record.Set(camera2.KeyControlAFMode, camera2.AFModeContinuousVideo)
	record.Set(camera2.KeyControlAETargetFPSRange, camera2.Range{Lower: 30, Upper: 30})

	manual := camera2.NewRequestSet()
	manual.Set(camera2.KeyControlAEMode, camera2.AEModeOff)
	manual.Set(camera2.KeyControlAWBMode, camera2.AWBModeOff)
	manual.Set(camera2.KeyControlAFMode, camera2.AFModeOff)

	return camera2.TemplateTable{
		camera2.TemplatePreview:        preview,
		camera2.TemplateStillCapture:   still,
		camera2.TemplateRecord:         record,
		camera2.TemplateVideoSnapshot:  record.Clone(),
		camera2.TemplateZeroShutterLag: still.Clone(),
		camera2.TemplateManual:         manual,
	}
}
